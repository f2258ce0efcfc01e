package destination

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"

	"github.com/goccy/go-json"
	"github.com/jonboulle/clockwork"
)

const httpTimeout = 10 * time.Second

// newHTTPClient returns an http.Client with a 10-second timeout.
func newHTTPClient() *http.Client {
	return &http.Client{Timeout: httpTimeout}
}

// doGet performs a GET request and decodes the JSON response into dst.
func doGet(ctx context.Context, client *http.Client, rawURL string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", redact(rawURL), err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", redact(rawURL), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("GET %s returned status %d", redact(rawURL), resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", redact(rawURL), err)
	}

	return nil
}

// redact strips the query string so API keys never reach logs.
func redact(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid url>"
	}
	u.RawQuery = ""
	return u.String()
}

// ---- OpenWeatherMap ----

// WeatherClient fetches current weather and a short forecast from OpenWeatherMap.
type WeatherClient struct {
	apiKey      string
	currentURL  string
	forecastURL string
	client      *http.Client
}

const (
	owmCurrentDefault  = "https://api.openweathermap.org/data/2.5/weather"
	owmForecastDefault = "https://api.openweathermap.org/data/2.5/forecast"
)

// NewWeatherClient constructs a WeatherClient with the given API key.
func NewWeatherClient(apiKey string) *WeatherClient {
	return NewWeatherClientWithURLs(owmCurrentDefault, owmForecastDefault, apiKey)
}

// NewWeatherClientWithURLs constructs a WeatherClient pointing at custom URLs (for tests).
func NewWeatherClientWithURLs(currentURL, forecastURL, apiKey string) *WeatherClient {
	return &WeatherClient{
		apiKey:      apiKey,
		currentURL:  currentURL,
		forecastURL: forecastURL,
		client:      newHTTPClient(),
	}
}

type owmCurrentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
		Icon string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
	} `json:"sys"`
}

type owmForecastResponse struct {
	List []struct {
		Dt   int64 `json:"dt"`
		Main struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
	} `json:"list"`
}

// Fetch retrieves current conditions and a three-day forecast for city.
// A failed forecast request leaves the forecast empty.
func (c *WeatherClient) Fetch(ctx context.Context, city string) (*LiveWeather, error) {
	query := "?q=" + url.QueryEscape(city) + "&units=metric&appid=" + c.apiKey

	var current owmCurrentResponse
	if err := doGet(ctx, c.client, c.currentURL+query, &current); err != nil {
		return nil, fmt.Errorf("openweathermap current for %s: %w", city, err)
	}

	lw := &LiveWeather{
		Temperature: int(math.Round(current.Main.Temp)),
		Humidity:    current.Main.Humidity,
		Wind:        int(math.Round(current.Wind.Speed)),
		Forecast:    []ForecastDay{},
		Location:    LiveLocation{Name: current.Name, Country: current.Sys.Country},
	}
	if len(current.Weather) > 0 {
		lw.Condition = current.Weather[0].Main
		lw.Icon = current.Weather[0].Icon
	}

	var forecast owmForecastResponse
	if err := doGet(ctx, c.client, c.forecastURL+query, &forecast); err != nil {
		slog.Warn("openweathermap forecast failed", "city", city, "err", err)
		return lw, nil
	}

	seen := make(map[string]bool, forecastDays)
	for _, item := range forecast.List {
		day := time.Unix(item.Dt, 0).UTC().Weekday().String()[:3]
		if seen[day] {
			continue
		}
		seen[day] = true
		lw.Forecast = append(lw.Forecast, ForecastDay{Day: day, Temp: int(math.Round(item.Main.Temp))})
		if len(lw.Forecast) == forecastDays {
			break
		}
	}

	return lw, nil
}

// ---- NewsAPI ----

// NewsClient fetches recent travel news about a location from NewsAPI.
type NewsClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	clock   clockwork.Clock
}

const (
	newsDefaultURL = "https://newsapi.org/v2/everything"
	newsWindow     = 30 * 24 * time.Hour
	newsPageSize   = 5
)

// NewNewsClient constructs a NewsClient with the given API key.
func NewNewsClient(apiKey string) *NewsClient {
	return &NewsClient{apiKey: apiKey, baseURL: newsDefaultURL, client: newHTTPClient(), clock: clockwork.NewRealClock()}
}

// NewNewsClientWithURL constructs a NewsClient pointing at a custom base URL (for tests).
func NewNewsClientWithURL(baseURL, apiKey string, clock clockwork.Clock) *NewsClient {
	return &NewsClient{apiKey: apiKey, baseURL: baseURL, client: newHTTPClient(), clock: clock}
}

type newsAPIResponse struct {
	Articles []struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		URL         string     `json:"url"`
		URLToImage  string     `json:"urlToImage"`
		PublishedAt *time.Time `json:"publishedAt"`
		Source      struct {
			Name string `json:"name"`
		} `json:"source"`
	} `json:"articles"`
}

// Fetch retrieves up to five travel articles about location from the last 30 days.
// Articles without a title, description or URL are dropped.
func (c *NewsClient) Fetch(ctx context.Context, location string) ([]Article, error) {
	now := c.clock.Now().UTC()
	params := url.Values{}
	params.Set("q", location+" travel tourism")
	params.Set("from", now.Add(-newsWindow).Format(time.DateOnly))
	params.Set("to", now.Format(time.DateOnly))
	params.Set("sortBy", "relevancy")
	params.Set("language", "en")
	params.Set("pageSize", fmt.Sprint(newsPageSize))
	params.Set("apiKey", c.apiKey)

	var raw newsAPIResponse
	if err := doGet(ctx, c.client, c.baseURL+"?"+params.Encode(), &raw); err != nil {
		return nil, fmt.Errorf("newsapi fetch for %s: %w", location, err)
	}

	articles := make([]Article, 0, len(raw.Articles))
	for _, a := range raw.Articles {
		if a.Title == "" || a.Description == "" || a.URL == "" {
			continue
		}
		articles = append(articles, Article{
			Title:       a.Title,
			Description: a.Description,
			URL:         a.URL,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
			URLToImage:  a.URLToImage,
		})
	}

	return articles, nil
}

// ---- RestCountries ----

// CountriesClient fetches country info from RestCountries (no API key required).
type CountriesClient struct {
	baseURL string
	client  *http.Client
}

const countriesDefaultURL = "https://restcountries.com/v3.1/name"

// NewCountriesClient constructs a CountriesClient.
func NewCountriesClient() *CountriesClient {
	return &CountriesClient{baseURL: countriesDefaultURL, client: newHTTPClient()}
}

// NewCountriesClientWithURL constructs a CountriesClient pointing at a custom base URL (for tests).
func NewCountriesClientWithURL(baseURL string) *CountriesClient {
	return &CountriesClient{baseURL: baseURL, client: newHTTPClient()}
}

type restCountriesEntry struct {
	Capital    []string          `json:"capital"`
	Region     string            `json:"region"`
	Languages  map[string]string `json:"languages"`
	Currencies map[string]struct {
		Name string `json:"name"`
	} `json:"currencies"`
}

// Fetch retrieves country data for the given country name.
func (c *CountriesClient) Fetch(ctx context.Context, country string) (*CountryData, error) {
	endpoint := c.baseURL + "/" + url.PathEscape(country) + "?fullText=true"

	var raw []restCountriesEntry
	if err := doGet(ctx, c.client, endpoint, &raw); err != nil {
		return nil, fmt.Errorf("restcountries fetch for %s: %w", country, err)
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("restcountries: no results for %s", country)
	}

	entry := raw[0]

	currencies := make(map[string]string, len(entry.Currencies))
	for code, cur := range entry.Currencies {
		currencies[code] = cur.Name
	}

	languages := make([]string, 0, len(entry.Languages))
	for _, lang := range entry.Languages {
		languages = append(languages, lang)
	}

	capital := ""
	if len(entry.Capital) > 0 {
		capital = entry.Capital[0]
	}

	return &CountryData{
		Currencies: currencies,
		Languages:  languages,
		Region:     entry.Region,
		Capital:    capital,
	}, nil
}
