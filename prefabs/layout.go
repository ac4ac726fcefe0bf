package prefabs

import (
	"context"
	"fmt"
	"time"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const layoutTimeout = time.Second

// layoutModules is everything a layout script may import.
var layoutModules = []string{"math"}

// RunLayout runs a chain layout script. The script sees the globals count and
// spacing and must leave count [x, y] pairs in the global points. Only the
// math module can be imported.
func RunLayout(ctx context.Context, scriptPath string, count int, spacing int64) ([]PointSpec, error) {
	if count <= 0 {
		return nil, nil
	}

	src, err := LoadScript(scriptPath)
	if err != nil {
		return nil, fmt.Errorf("layout: load %s: %w", scriptPath, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(layoutModules...))
	if err := script.Add("count", count); err != nil {
		return nil, fmt.Errorf("layout: add count: %w", err)
	}
	if err := script.Add("spacing", spacing); err != nil {
		return nil, fmt.Errorf("layout: add spacing: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, layoutTimeout)
	defer cancel()
	compiled, err := script.RunContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("layout: run %s: %w", scriptPath, err)
	}

	if !compiled.IsDefined("points") {
		return nil, fmt.Errorf("layout: %s: points not defined", scriptPath)
	}
	raw := compiled.Get("points").Array()
	if len(raw) != count {
		return nil, fmt.Errorf("layout: %s: got %d points, want %d", scriptPath, len(raw), count)
	}

	points := make([]PointSpec, 0, count)
	for i, item := range raw {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("layout: %s: point %d is not an [x, y] pair", scriptPath, i)
		}
		x, okX := pair[0].(int64)
		y, okY := pair[1].(int64)
		if !okX || !okY {
			return nil, fmt.Errorf("layout: %s: point %d is not integral", scriptPath, i)
		}
		points = append(points, PointSpec{X: x, Y: y})
	}
	return points, nil
}
