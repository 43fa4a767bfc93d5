package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"trailbuddy/pkg/model"
	"trailbuddy/pkg/request"
)

func TestCurrent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "54.46", q.Get("latitude"))
		assert.Equal(t, "-3.09", q.Get("longitude"))
		assert.Equal(t, "true", q.Get("current_weather"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current_weather": {"temperature": 11.3, "windspeed": 24.5, "weathercode": 61}}`))
	}))
	defer ts.Close()

	c := NewClient(request.New(2*time.Second), ts.URL)
	got := c.Current(context.Background(), 54.46, -3.09)

	assert.Equal(t, model.Weather{Temperature: 11.3, Windspeed: 24.5, WeatherCode: 61}, got)
}

func TestCurrent_FailureReturnsZeroRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	c := NewClient(request.New(2*time.Second), ts.URL)
	got := c.Current(context.Background(), 54.46, -3.09)

	assert.Equal(t, model.Weather{}, got)
}

func TestCurrent_MalformedBodyReturnsZeroRecord(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>not json</html>"))
	}))
	defer ts.Close()

	c := NewClient(request.New(2*time.Second), ts.URL)

	assert.Equal(t, model.Weather{}, c.Current(context.Background(), 54.46, -3.09))
}

func TestDescribeCode(t *testing.T) {
	assert.Equal(t, "Clear", DescribeCode(0))
	assert.Equal(t, "Thunderstorm", DescribeCode(95))
	assert.Equal(t, "Unknown", DescribeCode(42))
	assert.Equal(t, "Unknown", DescribeCode(-1))
}
