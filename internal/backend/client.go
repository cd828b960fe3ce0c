package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// Client — HTTP-реализация Backend. Все вызовы идут одним POST с конвертом
// {action, data}; таймаутов нет, отмена только через контекст.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient создаёт клиент для baseURL. rps <= 0 отключает лимитер.
func NewClient(baseURL string, rps, burst int) *Client {
	var limiter *rate.Limiter
	if rps > 0 {
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		limiter: limiter,
	}
}

func (c *Client) call(ctx context.Context, action string, data any, out any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	body, err := json.Marshal(envelope{Action: action, Data: data})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("dispatch %s: %w", action, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("dispatch %s: status=%d body=%s: %w", action, resp.StatusCode, string(raw), ErrStoreFailed)
	}

	if out == nil {
		var a ack
		if err := json.NewDecoder(resp.Body).Decode(&a); err != nil {
			return fmt.Errorf("dispatch %s: decode ack: %w", action, err)
		}
		if !a.Success {
			return fmt.Errorf("dispatch %s: %s: %w", action, a.Error, ErrStoreFailed)
		}
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("dispatch %s: decode: %w", action, err)
	}
	return nil
}

func (c *Client) FoodList(ctx context.Context) ([]FoodItem, error) {
	var items []FoodItem
	if err := c.call(ctx, actionGetFoodList, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) ComboList(ctx context.Context) ([]ComboItem, error) {
	var combos []ComboItem
	if err := c.call(ctx, actionGetComboList, nil, &combos); err != nil {
		return nil, err
	}
	return combos, nil
}

func (c *Client) NutritionLogs(ctx context.Context, date string) ([]NutritionLog, error) {
	var logs []NutritionLog
	if err := c.call(ctx, actionGetNutrition, dateQuery{Date: date}, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) LogNutrition(ctx context.Context, req LogNutritionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.call(ctx, actionLogNutrition, req, nil)
}

func (c *Client) UpdateNutrition(ctx context.Context, req UpdateNutritionRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.call(ctx, actionUpdateNutrition, req, nil)
}

func (c *Client) DeleteNutrition(ctx context.Context, id int64) error {
	return c.call(ctx, actionDeleteNutrition, idQuery{ID: id}, nil)
}

func (c *Client) LogCombo(ctx context.Context, date, comboName string) error {
	return c.call(ctx, actionLogCombo, logComboRequest{Date: date, ComboName: comboName}, nil)
}

func (c *Client) Workouts(ctx context.Context, date string) ([]WorkoutLog, error) {
	var logs []WorkoutLog
	if err := c.call(ctx, actionGetWorkouts, dateQuery{Date: date}, &logs); err != nil {
		return nil, err
	}
	return logs, nil
}

func (c *Client) LogWorkout(ctx context.Context, req LogWorkoutRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.call(ctx, actionLogWorkout, req, nil)
}

func (c *Client) DeleteWorkout(ctx context.Context, id int64) error {
	return c.call(ctx, actionDeleteWorkout, idQuery{ID: id}, nil)
}

func (c *Client) Routines(ctx context.Context) (RoutineDict, error) {
	var routines RoutineDict
	if err := c.call(ctx, actionGetRoutines, nil, &routines); err != nil {
		return nil, err
	}
	return routines, nil
}

func (c *Client) WorkoutHistory(ctx context.Context, date string) (HistoryMap, error) {
	var history HistoryMap
	if err := c.call(ctx, actionGetWorkoutHistory, dateQuery{Date: date}, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *Client) WeeklyAerobic(ctx context.Context, date string) (WeeklyAerobic, error) {
	var total WeeklyAerobic
	if err := c.call(ctx, actionGetWeeklyAerobic, dateQuery{Date: date}, &total); err != nil {
		return WeeklyAerobic{}, err
	}
	return total, nil
}

func (c *Client) BodyData(ctx context.Context, date string) (*BodyDataLog, error) {
	var body *BodyDataLog
	if err := c.call(ctx, actionGetBodyData, dateQuery{Date: date}, &body); err != nil {
		return nil, err
	}
	return body, nil
}

func (c *Client) LatestBodyMetrics(ctx context.Context) (LatestMetrics, error) {
	var latest LatestMetrics
	if err := c.call(ctx, actionGetLatestBodyMetrics, nil, &latest); err != nil {
		return LatestMetrics{}, err
	}
	return latest, nil
}

func (c *Client) LogBodyData(ctx context.Context, req LogBodyDataRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return c.call(ctx, actionLogBodyData, req, nil)
}

func (c *Client) Analytics(ctx context.Context) ([]AnalyticsPoint, error) {
	var points []AnalyticsPoint
	if err := c.call(ctx, actionGetAnalytics, nil, &points); err != nil {
		return nil, err
	}
	return points, nil
}
