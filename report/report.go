package report

import (
	"fmt"
	"io"
	"phish-lab/domain"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

const notAvailable = "n/a"

// Summary is what a training run reports once the document is written.
type Summary struct {
	ModelPath      string
	TrainSamples   int
	TestSamples    int
	VocabularySize int
	Evaluation     domain.Evaluation
}

// AccuracyLine is the one-line diagnostic printed after training.
func AccuracyLine(evaluation domain.Evaluation) string {
	return "Model accuracy: " + formatRatio(evaluation.Accuracy())
}

// Write renders the summary table followed by the accuracy line. The line is
// green when colours is set.
func Write(w io.Writer, summary Summary, colours bool) error {
	e := summary.Evaluation
	precision, hasPrecision := e.Precision()
	recall, hasRecall := e.Recall()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk([][]string{
		{"Model", summary.ModelPath},
		{"Train samples", strconv.Itoa(summary.TrainSamples)},
		{"Test samples", strconv.Itoa(summary.TestSamples)},
		{"Vocabulary", strconv.Itoa(summary.VocabularySize)},
		{"True positive", strconv.Itoa(e.TruePositive)},
		{"False positive", strconv.Itoa(e.FalsePositive)},
		{"True negative", strconv.Itoa(e.TrueNegative)},
		{"False negative", strconv.Itoa(e.FalseNegative)},
		{"Precision", formatRatio(precision, hasPrecision)},
		{"Recall", formatRatio(recall, hasRecall)},
	})
	table.Render()

	line := AccuracyLine(e)
	if colours {
		line = color.New(color.FgGreen, color.OpBold).Render(line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}

func formatRatio(value float64, ok bool) string {
	if !ok {
		return notAvailable
	}
	return fmt.Sprintf("%.2f", value)
}
