package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/gamestack/internal/client/models"
)

var getLines = GetLines

// Stats asks for aggregate expressions such as "MAX score" and prints the
// resulting rows.
func (a *App) Stats(ctx context.Context, leaderboardID string) error {
	lines, err := getLines(a.reader, "Enter statistics as '<AVG|MAX|MIN|SUM> <dimension>'", a.out)
	if err != nil {
		return err
	}
	stats, err := parseStatistics(lines)
	if err != nil {
		return err
	}

	out, err := a.leaderboardService.GetStats(ctx, a.config.ApplicationID, leaderboardID, models.GetLeaderboardStatsInput{Stats: stats})
	if err != nil {
		return err
	}

	if len(out.Stats) == 0 {
		fmt.Fprintln(a.out, "No rows")
		return nil
	}
	for _, row := range out.Stats {
		fmt.Fprintln(a.out, formatRow(row))
	}
	return nil
}

// PostStats asks for name=value pairs and submits them as the player's
// dimensions.
func (a *App) PostStats(ctx context.Context, leaderboardID string) error {
	lines, err := getLines(a.reader, "Enter dimensions as 'name=value'", a.out)
	if err != nil {
		return err
	}
	dims, err := parseDimensions(lines)
	if err != nil {
		return err
	}
	if len(dims) == 0 {
		return fmt.Errorf("no dimensions given")
	}

	if err := a.leaderboardService.PutStats(ctx, a.config.ApplicationID, leaderboardID, models.PutLeaderboardStatsInput{Dimensions: dims}); err != nil {
		return err
	}
	fmt.Fprintln(a.out, "Saved", strings.Join(models.DimensionNames(dims), ", "))
	return nil
}

func parseStatistics(lines []string) ([]models.Statistic, error) {
	stats := make([]models.Statistic, 0, len(lines))
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) != 2 {
			return nil, fmt.Errorf("invalid statistic %q", l)
		}
		op := models.StatOperation(strings.ToUpper(f[0]))
		switch op {
		case models.StatAvg, models.StatMax, models.StatMin, models.StatSum:
		default:
			return nil, fmt.Errorf("unknown operation %q", f[0])
		}
		stats = append(stats, models.Statistic{Dimension: f[1], Op: op})
	}
	return stats, nil
}

// parseDimensions reads name=value pairs. Values that parse as integers
// become INT, then FLOAT, anything else STRING.
func parseDimensions(lines []string) ([]models.Dimension, error) {
	dims := make([]models.Dimension, 0, len(lines))
	for _, l := range lines {
		name, raw, ok := strings.Cut(l, "=")
		name, raw = strings.TrimSpace(name), strings.TrimSpace(raw)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid dimension %q", l)
		}
		if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
			dims = append(dims, models.IntDimension(name, i))
		} else if f, err := strconv.ParseFloat(raw, 64); err == nil {
			dims = append(dims, models.FloatDimension(name, f))
		} else {
			dims = append(dims, models.StringDimension(name, raw))
		}
	}
	return dims, nil
}

func formatRow(row []models.Dimension) string {
	parts := make([]string, len(row))
	for i, d := range row {
		parts[i] = d.Name + "=" + d.Data.String()
	}
	return strings.Join(parts, " ")
}
