package upstream

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"roomgrid/models"
)

// Credentials carries the vendor API authentication material: HTTP Basic
// plus a static API key header.
type Credentials struct {
	Username string
	Password string
	APIKey   string
}

// Client talks to the vendor scheduling API's occupancy endpoint.
type Client struct {
	hc      *http.Client
	baseURL string
	creds   Credentials
}

func New(baseURL string, creds Credentials, timeout time.Duration) *Client {
	return &Client{
		hc:      &http.Client{Timeout: timeout},
		baseURL: baseURL,
		creds:   creds,
	}
}

// occupancyResponse is the vendor envelope. Result=false with a message is a
// semantic failure even on HTTP 200.
type occupancyResponse struct {
	Result  bool        `json:"result"`
	Message string      `json:"message"`
	Data    []rawRecord `json:"data"`
}

// rawRecord keeps the loosely typed vendor fields. rental_id arrives as
// null, a number or a string depending on the record's origin; price is
// sometimes a quoted number.
type rawRecord struct {
	DateTime string `json:"date_time"`
	RentalID any    `json:"rental_id"`
	Price    any    `json:"price"`
}

// FetchOccupancy queries raw per-hour occupancy for one (service_id,
// room_id) pair over an inclusive date window and returns normalized
// records. Records whose date_time cannot be parsed are dropped; everything
// else that fails maps to models.UpstreamError carrying the pair.
func (c *Client) FetchOccupancy(ctx context.Context, clubID, serviceID, roomID int, startDate, endDate string) ([]models.OccupancyRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/occupancy", nil)
	if err != nil {
		return nil, &models.UpstreamError{ServiceID: serviceID, RoomID: roomID, Err: err}
	}
	req.SetBasicAuth(c.creds.Username, c.creds.Password)
	req.Header.Set("X-Api-Key", c.creds.APIKey)
	req.Header.Set("Accept", "application/json")

	q := req.URL.Query()
	q.Set("club_id", strconv.Itoa(clubID))
	q.Set("service_id", strconv.Itoa(serviceID))
	q.Set("room_id", strconv.Itoa(roomID))
	q.Set("start_date", startDate)
	q.Set("end_date", endDate)
	req.URL.RawQuery = q.Encode()

	res, err := c.hc.Do(req)
	if err != nil {
		return nil, &models.UpstreamError{ServiceID: serviceID, RoomID: roomID, Err: err}
	}
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &models.UpstreamError{ServiceID: serviceID, RoomID: roomID, Status: res.StatusCode, Err: err}
	}
	if res.StatusCode != http.StatusOK {
		return nil, &models.UpstreamError{
			ServiceID: serviceID, RoomID: roomID, Status: res.StatusCode,
			Message: fmt.Sprintf("unexpected status: %s", trimBody(body)),
		}
	}

	var env occupancyResponse
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &models.UpstreamError{ServiceID: serviceID, RoomID: roomID, Status: res.StatusCode, Err: err}
	}
	if !env.Result {
		return nil, &models.UpstreamError{
			ServiceID: serviceID, RoomID: roomID, Status: res.StatusCode,
			Message: env.Message,
		}
	}

	records := make([]models.OccupancyRecord, 0, len(env.Data))
	for _, raw := range env.Data {
		date, hhmm, ok := splitDateTime(raw.DateTime)
		if !ok {
			// Upstream noise is expected; skip rather than fail the fetch.
			continue
		}
		records = append(records, models.OccupancyRecord{
			Date:     date,
			Time:     hhmm,
			RentalID: normalizeRentalID(raw.RentalID),
			Price:    numericPrice(raw.Price),
		})
	}
	return records, nil
}

var (
	dateRe = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)
	timeRe = regexp.MustCompile(`\d{2}:\d{2}`)
)

// splitDateTime pulls the ISO date and HH:MM time out of the vendor's
// free-form date_time field.
func splitDateTime(s string) (date, hhmm string, ok bool) {
	loc := dateRe.FindStringIndex(s)
	if loc == nil {
		return "", "", false
	}
	date = s[loc[0]:loc[1]]
	// The time always follows the date in the vendor formats seen so far;
	// search the remainder only so we never pick digits out of the date.
	hhmm = timeRe.FindString(s[loc[1]:])
	if hhmm == "" {
		return "", "", false
	}
	return date, hhmm, true
}

// normalizeRentalID collapses the three vendor "free" spellings (null, empty
// string, zero) to the empty string.
func normalizeRentalID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		if id == "0" {
			return ""
		}
		return id
	case float64:
		if id == 0 {
			return ""
		}
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", id)
	}
}

// numericPrice extracts a usable price, tolerating quoted numbers.
func numericPrice(v any) *float64 {
	switch p := v.(type) {
	case float64:
		return &p
	case string:
		if f, err := strconv.ParseFloat(p, 64); err == nil {
			return &f
		}
	}
	return nil
}

func trimBody(b []byte) string {
	const max = 200
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
