// Package gap resolves heterogeneous pre-open snapshot payloads into gap
// candidates and ranks them into a watchlist.
package gap

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"PreMarketScout/internal/calculator"
	"PreMarketScout/internal/model"
)

// ErrMalformedRow indicates a snapshot row without a resolvable symbol or
// with a field that cannot be parsed as a number.
var ErrMalformedRow = errors.New("malformed snapshot row")

// Accepted key names per logical field, resolved first-match. Providers name
// their columns inconsistently across snapshot versions.
var (
	symbolKeys    = []string{"symbol", "scrip", "name"}
	prevCloseKeys = []string{"prev_close", "prevClose", "previousClose"}
	preOpenKeys   = []string{"open", "preopen_price", "preopen"}
	qtyKeys       = []string{"qty", "quantity", "tradedQty"}
)

// ParseSnapshot extracts gap candidates from a provider payload. Three
// shapes are tolerated: a map with a "data" list, a map with a "result"
// list (or any other list-valued key), and a bare list of row maps.
// Malformed rows are logged and dropped; the batch never fails.
func ParseSnapshot(payload any) []model.GapCandidate {
	var candidates []model.GapCandidate
	for _, row := range extractRows(payload) {
		c, err := resolveRow(row)
		if err != nil {
			log.Debug().Err(err).Msg("pre-open row dropped")
			continue
		}
		candidates = append(candidates, c)
	}
	return candidates
}

func extractRows(payload any) []map[string]any {
	switch p := payload.(type) {
	case map[string]any:
		if rows := toRowList(p["data"]); rows != nil {
			return rows
		}
		if rows := toRowList(p["result"]); rows != nil {
			return rows
		}
		for _, v := range p {
			if rows := toRowList(v); rows != nil {
				return rows
			}
		}
	case []any:
		return toRowList(payload)
	}
	return nil
}

func toRowList(v any) []map[string]any {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	rows := make([]map[string]any, 0, len(list))
	for _, item := range list {
		if m, ok := item.(map[string]any); ok {
			rows = append(rows, m)
		}
	}
	if len(rows) == 0 {
		return nil
	}
	return rows
}

func resolveRow(row map[string]any) (model.GapCandidate, error) {
	sym, ok := stringField(row, symbolKeys)
	if !ok {
		return model.GapCandidate{}, fmt.Errorf("%w: no resolvable symbol", ErrMalformedRow)
	}
	prev, err := numericField(row, prevCloseKeys, 0)
	if err != nil {
		return model.GapCandidate{}, err
	}
	preOpen, err := numericField(row, preOpenKeys, prev)
	if err != nil {
		return model.GapCandidate{}, err
	}
	qty, err := numericField(row, qtyKeys, 0)
	if err != nil {
		return model.GapCandidate{}, err
	}

	gapPct := 0.0
	if prev > 0 {
		if pct, err := calculator.PctChange(preOpen, prev); err == nil {
			gapPct = pct
		}
	}
	return model.GapCandidate{
		Symbol:    sym,
		PrevClose: prev,
		PreOpen:   preOpen,
		GapPct:    gapPct,
		Qty:       qty,
		HasQty:    true,
	}, nil
}

func stringField(row map[string]any, keys []string) (string, bool) {
	for _, k := range keys {
		if s, ok := row[k].(string); ok && s != "" {
			return s, true
		}
	}
	return "", false
}

// numericField returns the first non-empty value among the key candidates,
// falling back to the given default when none is present. A value that is
// present but not numeric poisons the whole row.
func numericField(row map[string]any, keys []string, fallback float64) (float64, error) {
	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		switch n := v.(type) {
		case float64:
			if n == 0 {
				continue // treat zero like absent, try the next synonym
			}
			return n, nil
		case string:
			if n == "" {
				continue
			}
			f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
			if err != nil {
				return 0, fmt.Errorf("%w: %s=%q is not numeric", ErrMalformedRow, k, n)
			}
			return f, nil
		default:
			return 0, fmt.Errorf("%w: %s has unsupported type %T", ErrMalformedRow, k, v)
		}
	}
	return fallback, nil
}
