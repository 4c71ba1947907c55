package database

import (
	"context"
	"strconv"
)

// Setting keys for persisted view state.
const (
	settingZoomScale  = "view.zoom_scale"
	settingScrollLeft = "view.scroll_left"
	settingScrollTop  = "view.scroll_top"
)

// GetSetting returns a setting value and whether it was present.
func (s *Store) GetSetting(ctx context.Context, key string) (string, bool) {
	var value *string
	err := s.db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil || value == nil {
		return "", false
	}
	return *value, true
}

// SetSetting upserts a setting value.
func (s *Store) SetSetting(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	return wrapSettingErr("set "+key, err)
}

// ViewState is the persisted chart position, restored at startup.
type ViewState struct {
	ZoomScale  float64
	ScrollLeft float64
	ScrollTop  float64
}

// SaveViewState persists the zoom scale and scroll offsets.
func (s *Store) SaveViewState(ctx context.Context, state ViewState) error {
	pairs := map[string]float64{
		settingZoomScale:  state.ZoomScale,
		settingScrollLeft: state.ScrollLeft,
		settingScrollTop:  state.ScrollTop,
	}
	for key, v := range pairs {
		if err := s.SetSetting(ctx, key, strconv.FormatFloat(v, 'g', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}

// LoadViewState restores the persisted chart position. The second return
// is false when no state was saved yet.
func (s *Store) LoadViewState(ctx context.Context) (ViewState, bool) {
	var state ViewState
	raw, ok := s.GetSetting(ctx, settingZoomScale)
	if !ok {
		return ViewState{}, false
	}
	scale, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return ViewState{}, false
	}
	state.ZoomScale = scale
	if raw, ok := s.GetSetting(ctx, settingScrollLeft); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.ScrollLeft = v
		}
	}
	if raw, ok := s.GetSetting(ctx, settingScrollTop); ok {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			state.ScrollTop = v
		}
	}
	return state, true
}
