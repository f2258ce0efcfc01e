package destination

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// weatherFetcher is the interface satisfied by WeatherClient.
type weatherFetcher interface {
	Fetch(ctx context.Context, city string) (*LiveWeather, error)
}

// newsFetcher is the interface satisfied by NewsClient.
type newsFetcher interface {
	Fetch(ctx context.Context, location string) ([]Article, error)
}

// countriesFetcher is the interface satisfied by CountriesClient.
type countriesFetcher interface {
	Fetch(ctx context.Context, country string) (*CountryData, error)
}

// Fetcher aggregates live data from all external APIs in parallel.
type Fetcher struct {
	weather   weatherFetcher
	news      newsFetcher
	countries countriesFetcher
}

// NewFetcher constructs a Fetcher with all three API clients using production URLs.
func NewFetcher(weatherKey, newsKey string) *Fetcher {
	return &Fetcher{
		weather:   NewWeatherClient(weatherKey),
		news:      NewNewsClient(newsKey),
		countries: NewCountriesClient(),
	}
}

// NewFetcherWithClients constructs a Fetcher with injectable clients (used in tests).
func NewFetcherWithClients(w weatherFetcher, n newsFetcher, c countriesFetcher) *Fetcher {
	return &Fetcher{weather: w, news: n, countries: c}
}

// ErrNoLiveData is returned by FetchAll when every upstream API failed.
var ErrNoLiveData = errors.New("no live data available")

// FetchAll fetches live data for location in parallel using errgroup.
// Individual API failures are non-fatal: partial data is returned with
// failures logged. If all of them fail, ErrNoLiveData is returned so that an
// empty report is never cached. An empty country falls back to the location.
func (f *Fetcher) FetchAll(ctx context.Context, location, country string) (*LiveReport, error) {
	if country == "" {
		country = location
	}

	g, gCtx := errgroup.WithContext(ctx)

	var weatherData *LiveWeather
	var articles []Article
	var countryData *CountryData

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("weather fetch panicked", "recover", r)
				err = fmt.Errorf("weather fetch panicked: %v", r)
			}
		}()
		wd, fetchErr := f.weather.Fetch(gCtx, location)
		if fetchErr != nil {
			slog.Warn("weather fetch failed", "location", location, "err", fetchErr)
			return nil
		}
		weatherData = wd
		return nil
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("news fetch panicked", "recover", r)
				err = fmt.Errorf("news fetch panicked: %v", r)
			}
		}()
		a, fetchErr := f.news.Fetch(gCtx, location)
		if fetchErr != nil {
			slog.Warn("news fetch failed", "location", location, "err", fetchErr)
			return nil
		}
		articles = a
		return nil
	})

	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("countries fetch panicked", "recover", r)
				err = fmt.Errorf("countries fetch panicked: %v", r)
			}
		}()
		cd, fetchErr := f.countries.Fetch(gCtx, country)
		if fetchErr != nil {
			slog.Warn("countries fetch failed", "country", country, "err", fetchErr)
			return nil
		}
		countryData = cd
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("fetching live data for %s: %w", location, err)
	}

	if weatherData == nil && len(articles) == 0 && countryData == nil {
		return nil, fmt.Errorf("fetching live data for %s: %w", location, ErrNoLiveData)
	}

	return &LiveReport{
		Weather:  weatherData,
		Articles: articles,
		Country:  countryData,
	}, nil
}
