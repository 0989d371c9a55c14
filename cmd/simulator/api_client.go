package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"
)

// APIClient handles HTTP communication with the backend
type APIClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewAPIClient creates a new API client
func NewAPIClient(baseURL string) *APIClient {
	return &APIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Request and response types matching backend

type TourInput struct {
	Title       string
	Description string
	Price       string
	Link        string
}

type Tour struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price string `json:"price"`
}

type TestimonialInput struct {
	FullName string `json:"fullname"`
	Content  string `json:"content"`
	Country  string `json:"country"`
}

type ContactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Tour    string `json:"tour"`
	Message string `json:"message"`
}

type VisitInput struct {
	IP        string
	UserAgent string
	Country   string
	Device    string // informational, derived from the user agent
}

type VisitEvent struct {
	Type    string `json:"type"`
	Device  string `json:"device"`
	Country string `json:"country"`
}

// Login authenticates and returns a bearer token.
func (c *APIClient) Login(email, password string) (string, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	resp, err := c.post("/users/login", body, "")
	if err != nil {
		return "", fmt.Errorf("login request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := decodeData(resp.Body, &result); err != nil {
		return "", err
	}

	return result.Token, nil
}

// CreateTour creates a tour via the admin API. Demo tours carry no image.
func (c *APIClient) CreateTour(token string, input TourInput) (*Tour, error) {
	form := url.Values{}
	form.Set("title", input.Title)
	form.Set("description", input.Description)
	form.Set("price", input.Price)
	form.Set("link", input.Link)

	req, err := http.NewRequest("POST", c.baseURL+"/tours/", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("create tour request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("create tour failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var tour Tour
	if err := decodeData(resp.Body, &tour); err != nil {
		return nil, err
	}

	return &tour, nil
}

// CreateTestimonial submits a testimonial; the endpoint is public.
func (c *APIClient) CreateTestimonial(input TestimonialInput) error {
	resp, err := c.post("/testimonials/", input, "")
	if err != nil {
		return fmt.Errorf("create testimonial request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("create testimonial failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// CreateContact submits a contact form message.
func (c *APIClient) CreateContact(input ContactInput) error {
	resp, err := c.post("/contactUs/", input, "")
	if err != nil {
		return fmt.Errorf("create contact request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("create contact failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	return nil
}

// TrackVisit fires a tracking hit with spoofed visitor headers. Returns
// whether the backend counted it as a new visitor.
func (c *APIClient) TrackVisit(input VisitInput) (bool, error) {
	req, err := http.NewRequest("POST", c.baseURL+"/analytics/track", nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("X-Forwarded-For", input.IP)
	req.Header.Set("User-Agent", input.UserAgent)
	if input.Country != "" {
		req.Header.Set("CF-IPCountry", input.Country)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, fmt.Errorf("track request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("track failed (status %d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result struct {
		Tracked bool `json:"tracked"`
	}
	if err := decodeData(resp.Body, &result); err != nil {
		return false, err
	}

	return result.Tracked, nil
}

// WatchVisits connects to the live feed and invokes handler per event until
// the connection drops.
func (c *APIClient) WatchVisits(token string, handler func(VisitEvent)) error {
	wsURL := "ws" + strings.TrimPrefix(c.baseURL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(wsURL+"/analytics/live?token="+url.QueryEscape(token), nil)
	if err != nil {
		return fmt.Errorf("dial failed: %w", err)
	}
	defer conn.Close()

	for {
		var event VisitEvent
		if err := conn.ReadJSON(&event); err != nil {
			return err
		}
		handler(event)
	}
}

// Demo data pools

var demoTours = []TourInput{
	{Title: "Northern Lights Expedition", Description: "Five nights chasing the aurora above the Arctic Circle.", Price: "$499.99", Link: "https://example.com/tours/northern-lights"},
	{Title: "Glacier Lagoon Cruise", Description: "Sail between icebergs on the famous glacier lagoon.", Price: "$129.00", Link: "https://example.com/tours/glacier-lagoon"},
	{Title: "Volcano Crater Trek", Description: "Full day hike to a dormant crater with mountain guides.", Price: "$189.50", Link: "https://example.com/tours/volcano-trek"},
	{Title: "Whale Watching", Description: "Three hour boat tour from the old harbour.", Price: "$95.00", Link: "https://example.com/tours/whales"},
	{Title: "Golden Circle Classic", Description: "Geysers, waterfalls and the rift valley in one day.", Price: "$75.00", Link: "https://example.com/tours/golden-circle"},
	{Title: "Ice Cave Adventure", Description: "Crampons on, head lamps lit, into the blue ice.", Price: "$249.00", Link: "https://example.com/tours/ice-cave"},
}

var demoTestimonials = []TestimonialInput{
	{FullName: "Maria Santos", Content: "An unforgettable week, the guides were wonderful.", Country: "Portugal"},
	{FullName: "Jonas Weber", Content: "Saw the northern lights on the very first night. Perfectly organised.", Country: "Germany"},
	{FullName: "Emily Chen", Content: "The glacier lagoon cruise was the highlight of our honeymoon.", Country: "Singapore"},
}

var demoContacts = []ContactInput{
	{Name: "Liam O'Brien", Email: "liam@example.com", Phone: "+353 86 123 4567", Tour: "Northern Lights Expedition", Message: "Do you run this tour in late March?"},
	{Name: "Anna Berg", Email: "anna@example.com", Message: "Is airport pickup included in the Golden Circle tour?"},
}

var visitorAgents = []struct {
	userAgent string
	device    string
}{
	{"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36", "desktop"},
	{"Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0) AppleWebKit/605.1.15 Safari/605.1.15", "desktop"},
	{"Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1", "mobile"},
	{"Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36", "mobile"},
	{"Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148 Safari/604.1", "tablet"},
}

var visitorCountries = []string{"IS", "DE", "US", "FR", "GB", "NO", "JP", ""}

func randomVisit(seq int) VisitInput {
	agent := visitorAgents[rand.Intn(len(visitorAgents))]
	return VisitInput{
		IP:        fmt.Sprintf("203.0.113.%d", seq%254+1),
		UserAgent: agent.userAgent,
		Country:   visitorCountries[rand.Intn(len(visitorCountries))],
		Device:    agent.device,
	}
}

// HTTP helpers

func (c *APIClient) post(path string, body interface{}, token string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest("POST", c.baseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.httpClient.Do(req)
}

// decodeData unwraps the {"success":true,"data":...} envelope.
func decodeData(r io.Reader, v interface{}) error {
	var envelope struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(r).Decode(&envelope); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if !envelope.Success {
		return fmt.Errorf("request was not successful")
	}
	return json.Unmarshal(envelope.Data, v)
}
