package destination

import "time"

// Destination is a single destination card, either from the static catalog or
// synthesized for a free-text query.
type Destination struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Image       string  `json:"image"`
	SafetyScore float64 `json:"safetyScore"`
	Description string  `json:"description"`
}

// Condition is a synthesized weather condition.
type Condition string

const (
	Sunny        Condition = "Sunny"
	PartlyCloudy Condition = "Partly Cloudy"
	Cloudy       Condition = "Cloudy"
	Rainy        Condition = "Rainy"
	Stormy       Condition = "Stormy"
)

// ForecastDay is one entry of a short forecast.
type ForecastDay struct {
	Day  string `json:"day"`
	Temp int    `json:"temp"`
}

// WeatherSnapshot holds current synthesized conditions and a 3-day forecast.
type WeatherSnapshot struct {
	Condition   Condition     `json:"condition"`
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Wind        int           `json:"wind"`
	Forecast    []ForecastDay `json:"forecast"`
}

// AlertType classifies a safety alert.
type AlertType string

const (
	AlertWeather     AlertType = "Weather"
	AlertHealth      AlertType = "Health"
	AlertTravel      AlertType = "Travel"
	AlertSecurity    AlertType = "Security"
	AlertTransport   AlertType = "Transport"
	AlertEnvironment AlertType = "Environment"
	AlertPolitical   AlertType = "Political"
	AlertEvent       AlertType = "Event"
)

// Severity of a safety alert.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SafetyAlert is one alert in a batch; IDs run 1..n within the batch.
type SafetyAlert struct {
	ID          int       `json:"id"`
	Type        AlertType `json:"type"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Severity    Severity  `json:"severity"`
}

// TravelTip is one tip; Title is the category it was drawn from.
type TravelTip struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Environment bundles everything synthesized for a location.
type Environment struct {
	Weather WeatherSnapshot `json:"weather"`
	Alerts  []SafetyAlert   `json:"alerts"`
	Tips    []TravelTip     `json:"tips"`
}

// SafetyProfile breaks a destination's safety down by category.
type SafetyProfile struct {
	Crime       int     `json:"crime"`
	Health      int     `json:"health"`
	Environment int     `json:"environment"`
	Overall     float64 `json:"overall"`
}

// LiveWeather holds current conditions reported by the upstream weather API.
type LiveWeather struct {
	Condition   string        `json:"condition"`
	Temperature int           `json:"temperature"`
	Humidity    int           `json:"humidity"`
	Wind        int           `json:"wind"`
	Icon        string        `json:"icon,omitempty"`
	Forecast    []ForecastDay `json:"forecast"`
	Location    LiveLocation  `json:"location"`
}

// LiveLocation is the place the weather API resolved the query to.
type LiveLocation struct {
	Name    string `json:"name"`
	Country string `json:"country"`
}

// Article is a news article about a destination.
type Article struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	URL         string     `json:"url"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	Source      string     `json:"source"`
	URLToImage  string     `json:"urlToImage,omitempty"`
}

// CountryData holds country-level information.
type CountryData struct {
	Currencies map[string]string `json:"currencies"`
	Languages  []string          `json:"languages"`
	Region     string            `json:"region"`
	Capital    string            `json:"capital"`
}

// LiveReport is the aggregated result from all external APIs.
type LiveReport struct {
	Weather  *LiveWeather `json:"weather,omitempty"`
	Articles []Article    `json:"articles,omitempty"`
	Country  *CountryData `json:"country,omitempty"`
}
