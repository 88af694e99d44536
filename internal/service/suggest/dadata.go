// Package suggest wraps the DaData suggestion API for company, address and
// person-name autocomplete.
package suggest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/zhalobnik/backend/internal/config"
)

const (
	baseURL        = "https://suggestions.dadata.ru/suggestions/api/4_1/rs"
	requestTimeout = 5 * time.Second
	defaultCount   = 5
)

// Client talks to the DaData suggestion endpoints. A client without an API
// key is still usable and returns empty suggestion lists.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient builds the suggestion client.
func NewClient(cfg config.DaDataConfig) *Client {
	return &Client{
		apiKey:  cfg.APIKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.apiKey != ""
}

// Company is one organization suggestion with the structured location
// fields used for jurisdiction resolution downstream.
type Company struct {
	Name         string `json:"name"`
	INN          string `json:"inn"`
	OGRN         string `json:"ogrn"`
	KPP          string `json:"kpp"`
	Address      string `json:"address"`
	Region       string `json:"region"`
	City         string `json:"city"`
	CityDistrict string `json:"city_district"`
	Area         string `json:"area"`
	Settlement   string `json:"settlement"`
	Type         string `json:"type"`
	Status       string `json:"status"`
	Director     string `json:"director"`
	DirectorPost string `json:"director_post"`
}

// Address is one address suggestion.
type Address struct {
	Value      string `json:"value"`
	PostalCode string `json:"postal_code"`
	Region     string `json:"region"`
	City       string `json:"city"`
	Street     string `json:"street"`
	House      string `json:"house"`
	Flat       string `json:"flat"`
}

// FIO is one person-name suggestion.
type FIO struct {
	Value      string `json:"value"`
	Surname    string `json:"surname"`
	Name       string `json:"name"`
	Patronymic string `json:"patronymic"`
	Gender     string `json:"gender"`
}

type suggestion struct {
	Value string          `json:"value"`
	Data  json.RawMessage `json:"data"`
}

type partyData struct {
	INN     string `json:"inn"`
	OGRN    string `json:"ogrn"`
	KPP     string `json:"kpp"`
	Type    string `json:"type"`
	Address struct {
		Value string `json:"value"`
		Data  struct {
			Region               string `json:"region"`
			RegionWithType       string `json:"region_with_type"`
			City                 string `json:"city"`
			CityWithType         string `json:"city_with_type"`
			CityDistrict         string `json:"city_district"`
			CityDistrictWithType string `json:"city_district_with_type"`
			Area                 string `json:"area"`
			AreaWithType         string `json:"area_with_type"`
			Settlement           string `json:"settlement"`
			SettlementWithType   string `json:"settlement_with_type"`
		} `json:"data"`
	} `json:"address"`
	State struct {
		Status string `json:"status"`
	} `json:"state"`
	Management struct {
		Name string `json:"name"`
		Post string `json:"post"`
	} `json:"management"`
}

// SuggestCompany searches organizations by name, tax id or OGRN.
func (c *Client) SuggestCompany(ctx context.Context, query string) ([]Company, error) {
	suggestions, err := c.request(ctx, "suggest/party", query, defaultCount)
	if err != nil {
		return nil, err
	}

	out := make([]Company, 0, len(suggestions))
	for _, s := range suggestions {
		company, err := parseCompany(s)
		if err != nil {
			continue
		}
		out = append(out, company)
	}
	return out, nil
}

// FindCompanyByINN resolves one organization by its exact tax id.
func (c *Client) FindCompanyByINN(ctx context.Context, inn string) (*Company, error) {
	suggestions, err := c.request(ctx, "findById/party", inn, 1)
	if err != nil {
		return nil, err
	}
	if len(suggestions) == 0 {
		return nil, nil
	}

	company, err := parseCompany(suggestions[0])
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func parseCompany(s suggestion) (Company, error) {
	data := partyData{}
	if err := json.Unmarshal(s.Data, &data); err != nil {
		return Company{}, err
	}

	addr := data.Address.Data
	return Company{
		Name:         s.Value,
		INN:          data.INN,
		OGRN:         data.OGRN,
		KPP:          data.KPP,
		Address:      data.Address.Value,
		Region:       firstNonEmpty(addr.RegionWithType, addr.Region),
		City:         firstNonEmpty(addr.CityWithType, addr.City),
		CityDistrict: firstNonEmpty(addr.CityDistrictWithType, addr.CityDistrict),
		Area:         firstNonEmpty(addr.AreaWithType, addr.Area),
		Settlement:   firstNonEmpty(addr.SettlementWithType, addr.Settlement),
		Type:         data.Type,
		Status:       data.State.Status,
		Director:     data.Management.Name,
		DirectorPost: data.Management.Post,
	}, nil
}

// SuggestAddress returns address completions for a partial input.
func (c *Client) SuggestAddress(ctx context.Context, query string) ([]Address, error) {
	suggestions, err := c.request(ctx, "suggest/address", query, defaultCount)
	if err != nil {
		return nil, err
	}

	out := make([]Address, 0, len(suggestions))
	for _, s := range suggestions {
		var data struct {
			PostalCode string `json:"postal_code"`
			Region     string `json:"region"`
			City       string `json:"city"`
			Street     string `json:"street"`
			House      string `json:"house"`
			Flat       string `json:"flat"`
		}
		if err := json.Unmarshal(s.Data, &data); err != nil {
			continue
		}
		out = append(out, Address{
			Value:      s.Value,
			PostalCode: data.PostalCode,
			Region:     data.Region,
			City:       data.City,
			Street:     data.Street,
			House:      data.House,
			Flat:       data.Flat,
		})
	}
	return out, nil
}

// SuggestFIO returns person-name completions.
func (c *Client) SuggestFIO(ctx context.Context, query string) ([]FIO, error) {
	suggestions, err := c.request(ctx, "suggest/fio", query, defaultCount)
	if err != nil {
		return nil, err
	}

	out := make([]FIO, 0, len(suggestions))
	for _, s := range suggestions {
		var data struct {
			Surname    string `json:"surname"`
			Name       string `json:"name"`
			Patronymic string `json:"patronymic"`
			Gender     string `json:"gender"`
		}
		if err := json.Unmarshal(s.Data, &data); err != nil {
			continue
		}
		out = append(out, FIO{
			Value:      s.Value,
			Surname:    data.Surname,
			Name:       data.Name,
			Patronymic: data.Patronymic,
			Gender:     data.Gender,
		})
	}
	return out, nil
}

func (c *Client) request(ctx context.Context, endpoint, query string, count int) ([]suggestion, error) {
	if !c.Enabled() {
		return nil, nil
	}

	body, err := json.Marshal(map[string]any{"query": query, "count": count})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/"+endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Token "+c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("dadata %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 200))
		log.Printf("[suggest] dadata %s returned %d: %s", endpoint, resp.StatusCode, snippet)
		return nil, fmt.Errorf("dadata %s: status %d", endpoint, resp.StatusCode)
	}

	var payload struct {
		Suggestions []suggestion `json:"suggestions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("dadata %s: %w", endpoint, err)
	}
	return payload.Suggestions, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
