package googlemaps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"rental-commute-service/internal/domain"
	"rental-commute-service/internal/platform/obs"
	"rental-commute-service/internal/ports"
	"strconv"
	"strings"
	"time"
)

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// RouteDurations issues one Distance Matrix request carrying every
// origin and returns one result per origin, in origin order. Origins
// the provider could not route resolve to nil entries rather than an
// error; only a malformed or failed response errors out (and the
// caller degrades that to no-result for the whole batch).
func (g *GoogleMapsProvider) RouteDurations(
	ctx context.Context,
	origins []domain.Coordinates,
	destination domain.Coordinates,
	mode domain.TravelMode,
	arriveBy time.Time,
) (_ []*ports.CommuteResult, err error) {
	defer obs.Time(ctx, "googlemaps.RouteDurations")(&err)

	if len(origins) == 0 {
		return []*ports.CommuteResult{}, nil
	}

	originParts := make([]string, 0, len(origins))
	for _, o := range origins {
		originParts = append(originParts, o.String())
	}

	makeQuery := func() url.Values {
		q := url.Values{}
		q.Set("origins", strings.Join(originParts, "|"))
		q.Set("destinations", destination.String())
		q.Set("mode", string(mode))
		q.Set("arrival_time", strconv.FormatInt(arriveBy.Unix(), 10))
		return q
	}

	resp, err := g.doWithRetry(ctx, func() (*http.Request, error) {
		return g.newRequest(ctx, "/maps/api/distancematrix/json", makeQuery())
	})
	if err != nil {
		return nil, fmt.Errorf("distance matrix request failed: %w", err)
	}
	defer resp.Body.Close()

	var decoded matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode distance matrix response: %w", err)
	}

	if decoded.Status != "OK" {
		return nil, fmt.Errorf("distance matrix status %s", decoded.Status)
	}

	// One row per origin, each with a single element for our one destination.
	if len(decoded.Rows) != len(origins) {
		return nil, fmt.Errorf(
			"distance matrix row count does not match origins: rows=%d origins=%d",
			len(decoded.Rows), len(origins),
		)
	}

	out := make([]*ports.CommuteResult, len(origins))
	for i, row := range decoded.Rows {
		if len(row.Elements) != 1 {
			return nil, fmt.Errorf("distance matrix row %d has %d elements, want 1", i, len(row.Elements))
		}

		el := row.Elements[0]
		if el.Status != "OK" {
			continue
		}
		out[i] = &ports.CommuteResult{DurationSeconds: el.Duration.Value}
	}

	return out, nil
}
