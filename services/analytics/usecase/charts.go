package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math/rand"

	"github.com/adityaw/fraudlens/internal/pkg/models"
	"github.com/adityaw/fraudlens/internal/pkg/plotly"
)

var (
	numericCols  = []string{"Amount", "PreviousFraud", "TransactionSpeed", "Prediction"}
	categoryCols = []string{"TransactionType", "Location", "DeviceType", "TimeOfDay"}
)

// GenerateCharts builds the chart battery over the user's full history:
// three univariate charts, a scatter, a grouped bar of joint counts, a
// box plot, and three 3-D scatters colored by prediction label. An
// empty history yields an empty battery.
func (u *AnalyticsUC) GenerateCharts(ctx context.Context, userID int64) ([]json.RawMessage, error) {
	txns, err := u.txnRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load transaction history: %w", err)
	}
	if len(txns) == 0 {
		return []json.RawMessage{}, nil
	}

	sel := u.selectColumns()
	figures := make([]plotly.Figure, 0, 9)

	for _, col := range sel.uni {
		if isNumeric(col) {
			figures = append(figures, histogramFigure(txns, col))
		} else {
			figures = append(figures, countFigure(txns, col))
		}
	}

	figures = append(figures, scatterFigure(txns, sel.scatter[0], sel.scatter[1]))
	figures = append(figures, jointCountFigure(txns, sel.joint[0], sel.joint[1]))
	figures = append(figures, boxFigure(txns, sel.boxCat, sel.boxNum))

	figures = append(figures, scatter3dFigure(txns,
		axis{name: sel.triple[0]}, axis{name: sel.triple[1]}, axis{name: sel.triple[2]}))

	figures = append(figures, scatter3dFigure(txns,
		axis{name: sel.mixedNum[0]}, axis{name: sel.mixedNum[1]}, axis{name: sel.mixedCat, hashed: true}))

	figures = append(figures, scatter3dFigure(txns,
		axis{name: sel.hashedCat[0], hashed: true}, axis{name: sel.hashedCat[1], hashed: true}, axis{name: sel.hashedNum}))

	battery := make([]json.RawMessage, 0, len(figures))
	for _, fig := range figures {
		payload, err := json.Marshal(fig)
		if err != nil {
			return nil, fmt.Errorf("failed to encode figure: %w", err)
		}
		battery = append(battery, payload)
	}

	return battery, nil
}

// columnSelection is one draw of the random column choices for a full
// battery
type columnSelection struct {
	uni       []string
	scatter   []string
	joint     []string
	boxCat    string
	boxNum    string
	triple    []string
	mixedNum  []string
	mixedCat  string
	hashedCat []string
	hashedNum string
}

func (u *AnalyticsUC) selectColumns() columnSelection {
	u.rngMu.Lock()
	defer u.rngMu.Unlock()

	allCols := append(append([]string{}, numericCols...), categoryCols...)
	return columnSelection{
		uni:       sample(u.rng, allCols, 3),
		scatter:   sample(u.rng, numericCols, 2),
		joint:     sample(u.rng, categoryCols, 2),
		boxCat:    pick(u.rng, categoryCols),
		boxNum:    pick(u.rng, numericCols),
		triple:    sample(u.rng, numericCols, 3),
		mixedNum:  sample(u.rng, numericCols, 2),
		mixedCat:  pick(u.rng, categoryCols),
		hashedCat: sample(u.rng, categoryCols, 2),
		hashedNum: pick(u.rng, numericCols),
	}
}

func isNumeric(col string) bool {
	for _, c := range numericCols {
		if c == col {
			return true
		}
	}
	return false
}

// sample returns n distinct columns in random order
func sample(r *rand.Rand, cols []string, n int) []string {
	out := make([]string, 0, n)
	for _, i := range r.Perm(len(cols))[:n] {
		out = append(out, cols[i])
	}
	return out
}

func pick(r *rand.Rand, cols []string) string {
	return cols[r.Intn(len(cols))]
}

func numericValue(t *models.Transaction, col string) float64 {
	switch col {
	case "Amount":
		return t.Amount
	case "PreviousFraud":
		return float64(t.PreviousFraud)
	case "TransactionSpeed":
		return t.TransactionSpeed
	default:
		return float64(t.Prediction)
	}
}

func categoryValue(t *models.Transaction, col string) string {
	switch col {
	case "TransactionType":
		return t.TransactionType
	case "Location":
		return t.Location
	case "DeviceType":
		return t.DeviceType
	default:
		return t.TimeOfDay
	}
}

// hashCode folds a category label onto a small numeric axis
func hashCode(label string) int {
	h := fnv.New32a()
	h.Write([]byte(label))
	return int(h.Sum32() % 10)
}

func histogramFigure(txns []models.Transaction, col string) plotly.Figure {
	x := make([]interface{}, 0, len(txns))
	for i := range txns {
		x = append(x, numericValue(&txns[i], col))
	}
	return plotly.Figure{
		Data: []plotly.Trace{{Type: "histogram", X: x, NBinsX: 20}},
		Layout: plotly.Layout{
			Title: fmt.Sprintf("Distribution of %s", col),
			XAxis: &plotly.Axis{Title: col},
		},
	}
}

func countFigure(txns []models.Transaction, col string) plotly.Figure {
	labels, counts := countByKey(txns, func(t *models.Transaction) string {
		return categoryValue(t, col)
	})
	return plotly.Figure{
		Data: []plotly.Trace{{Type: "bar", X: labels, Y: counts}},
		Layout: plotly.Layout{
			Title: fmt.Sprintf("Distribution of %s", col),
			XAxis: &plotly.Axis{Title: col},
		},
	}
}

func scatterFigure(txns []models.Transaction, xCol, yCol string) plotly.Figure {
	x := make([]interface{}, 0, len(txns))
	y := make([]interface{}, 0, len(txns))
	for i := range txns {
		x = append(x, numericValue(&txns[i], xCol))
		y = append(y, numericValue(&txns[i], yCol))
	}
	return plotly.Figure{
		Data: []plotly.Trace{{Type: "scatter", Mode: "markers", X: x, Y: y}},
		Layout: plotly.Layout{
			Title: fmt.Sprintf("%s vs %s", xCol, yCol),
			XAxis: &plotly.Axis{Title: xCol},
			YAxis: &plotly.Axis{Title: yCol},
		},
	}
}

func jointCountFigure(txns []models.Transaction, aCol, bCol string) plotly.Figure {
	labels, counts := countByKey(txns, func(t *models.Transaction) string {
		return fmt.Sprintf("%s | %s", categoryValue(t, aCol), categoryValue(t, bCol))
	})
	return plotly.Figure{
		Data: []plotly.Trace{{Type: "bar", X: labels, Y: counts}},
		Layout: plotly.Layout{
			Title: fmt.Sprintf("%s vs %s", aCol, bCol),
		},
	}
}

func boxFigure(txns []models.Transaction, catCol, numCol string) plotly.Figure {
	x := make([]interface{}, 0, len(txns))
	y := make([]interface{}, 0, len(txns))
	for i := range txns {
		x = append(x, categoryValue(&txns[i], catCol))
		y = append(y, numericValue(&txns[i], numCol))
	}
	return plotly.Figure{
		Data: []plotly.Trace{{Type: "box", X: x, Y: y}},
		Layout: plotly.Layout{
			Title: fmt.Sprintf("%s vs %s", catCol, numCol),
			XAxis: &plotly.Axis{Title: catCol},
			YAxis: &plotly.Axis{Title: numCol},
		},
	}
}

// axis describes one 3-D scatter axis; hashed category labels are
// folded onto numeric positions
type axis struct {
	name   string
	hashed bool
}

func (a axis) value(t *models.Transaction) interface{} {
	if a.hashed {
		return hashCode(categoryValue(t, a.name))
	}
	return numericValue(t, a.name)
}

func scatter3dFigure(txns []models.Transaction, xa, ya, za axis) plotly.Figure {
	x := make([]interface{}, 0, len(txns))
	y := make([]interface{}, 0, len(txns))
	z := make([]interface{}, 0, len(txns))
	color := make([]interface{}, 0, len(txns))
	for i := range txns {
		x = append(x, xa.value(&txns[i]))
		y = append(y, ya.value(&txns[i]))
		z = append(z, za.value(&txns[i]))
		color = append(color, txns[i].Prediction)
	}
	return plotly.Figure{
		Data: []plotly.Trace{{
			Type:   "scatter3d",
			Mode:   "markers",
			X:      x,
			Y:      y,
			Z:      z,
			Marker: &plotly.Marker{Color: color, ColorScale: "Viridis", Size: 4},
		}},
		Layout: plotly.Layout{
			Title: fmt.Sprintf("%s vs %s vs %s", xa.name, ya.name, za.name),
			Scene: &plotly.Scene{
				XAxis: &plotly.Axis{Title: xa.name},
				YAxis: &plotly.Axis{Title: ya.name},
				ZAxis: &plotly.Axis{Title: za.name},
			},
		},
	}
}

// countByKey tallies rows per key, keeping first-seen order
func countByKey(txns []models.Transaction, key func(*models.Transaction) string) ([]interface{}, []interface{}) {
	counts := map[string]int{}
	order := []string{}
	for i := range txns {
		k := key(&txns[i])
		if _, seen := counts[k]; !seen {
			order = append(order, k)
		}
		counts[k]++
	}

	labels := make([]interface{}, 0, len(order))
	values := make([]interface{}, 0, len(order))
	for _, k := range order {
		labels = append(labels, k)
		values = append(values, counts[k])
	}
	return labels, values
}
