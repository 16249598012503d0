package hh

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.hh.ru"

var ErrAreaNotFound = errors.New("area not found")

type getVacanciesResponse struct {
	Vacancies []VacancyPreview `json:"items"`
	Pages     int              `json:"pages"`
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	httpClient  HTTPClient
	rateLimiter *rate.Limiter
	baseURL     string
}

func NewClient() *Client {
	return &Client{httpClient: &http.Client{}, baseURL: defaultBaseURL}
}

func (c *Client) SetHTTPClient(client HTTPClient) {
	c.httpClient = client
}

func (c *Client) SetBaseURL(baseURL string) {
	c.baseURL = strings.TrimSuffix(baseURL, "/")
}

func (c *Client) SetRateLimit(maxRequestsPerSecond float64) {
	c.rateLimiter = rate.NewLimiter(rate.Limit(maxRequestsPerSecond), 1)
}

// GetVacancies returns one page of search results and the total number of pages.
func (c *Client) GetVacancies(ctx context.Context, parameters SearchParameters) ([]VacancyPreview, int, error) {
	if err := parameters.Validate(); err != nil {
		return nil, 0, errors.Wrap(err, "invalid parameters")
	}

	params := parameters.ToUrlParams()
	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"/vacancies?"+params.Encode(), nil)
	if err != nil {
		return nil, 0, err
	}

	var vacanciesResponse getVacanciesResponse
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&vacanciesResponse); err != nil {
		return nil, 0, errors.Wrap(err, "error decoding JSON response")
	}

	return vacanciesResponse.Vacancies, vacanciesResponse.Pages, nil
}

func (c *Client) GetVacancy(ctx context.Context, id string) (Vacancy, error) {
	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"/vacancies/"+id, nil)
	if err != nil {
		return Vacancy{}, err
	}

	var vacancyResponse Vacancy
	if err := json.NewDecoder(bytes.NewReader(body)).Decode(&vacancyResponse); err != nil {
		return Vacancy{}, errors.Wrap(err, "error decoding JSON response")
	}

	return vacancyResponse, nil
}

// GetAreas returns the whole area tree flattened depth-first.
func (c *Client) GetAreas(ctx context.Context) ([]Area, error) {
	body, err := c.sendRequest(ctx, http.MethodGet, c.baseURL+"/areas", nil)
	if err != nil {
		return nil, err
	}

	var areas []area
	if err = json.NewDecoder(bytes.NewReader(body)).Decode(&areas); err != nil {
		return nil, errors.Wrap(err, "error decoding JSON response")
	}

	var allAreas []Area

	var collectAreas func(areas []area)
	collectAreas = func(areas []area) {
		for _, area := range areas {
			allAreas = append(allAreas, Area{ID: area.ID, Name: area.Name})
			collectAreas(area.Areas)
		}
	}
	collectAreas(areas)
	return allAreas, nil
}

// ResolveAreaID accepts either a numeric area id, returned as is, or an area name.
func (c *Client) ResolveAreaID(ctx context.Context, area string) (string, error) {
	area = strings.TrimSpace(area)
	if area == "" || isNumeric(area) {
		return area, nil
	}

	areas, err := c.GetAreas(ctx)
	if err != nil {
		return "", err
	}

	for _, a := range areas {
		if strings.EqualFold(a.Name, area) {
			return a.ID, nil
		}
	}
	return "", errors.Wrapf(ErrAreaNotFound, "%q", area)
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (c *Client) sendRequest(ctx context.Context, method string, url string, body io.Reader) ([]byte, error) {
	if c.rateLimiter != nil {
		if err := c.rateLimiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "error creating request")
	}
	req.Header.Set("User-Agent", "jobfit/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "error sending request")
	}
	defer resp.Body.Close()

	return c.handleResponse(resp)
}

func (c *Client) handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "error reading response body")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request failed with status %v, body: %v", resp.StatusCode, string(body))
	}

	return body, nil
}
