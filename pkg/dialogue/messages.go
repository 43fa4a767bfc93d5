package dialogue

// Canned assistant replies. These are the deterministic half of the
// conversation; generated prose only ever replaces the templated
// descriptions, never these prompts.
const (
	msgAskDistance      = "Max distance (km)?"
	msgAskNumber        = "Please enter a number."
	msgAskScenery       = "Preferred scenery? (Lake, Forest, Panoramic, etc. - optional)"
	msgAskRouteType     = "Preferred route type? (Loop, Out-and-back, Ridge)"
	msgChooseDifficulty = "Choose difficulty: Very Easy, Easy, Moderate, Hard, Very Hard"
	msgNoTrails         = "Sorry, I couldn't find any trails matching your preferences."
	msgDeclineSelection = "Alright! Let me know if you want to plan a different trail."
	msgDeclineAmenities = "No problem! Enjoy your hike!"
	msgNotSure          = "I'm not sure how to respond. Please follow the prompts."

	// Greeting and goodbye used by the CLI shell.
	MsgGreeting = "Hey! Your Trail Buddy is ready! Which difficulty would you like? (Very Easy, Easy, Moderate, Hard, Very Hard)"
	MsgGoodbye  = "Goodbye! Enjoy your hike!"
)
