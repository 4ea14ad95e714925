package main

import (
	"bytes"
	"flag"
	"fmt"
	"log"
	"os"
	"phish-lab/bayes"
	"phish-lab/features"
	"phish-lab/repositories"
	"phish-lab/serializer"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
)

func main() {
	dbPath := flag.String("db", "", "Path to the model registry")
	limit := flag.Int("limit", 20, "Number of models to list, 0 for all")
	url := flag.String("classify", "", "Score a URL against the latest model instead of listing")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("-db is required")
	}
	db, err := badger.Open(badger.DefaultOptions(*dbPath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	repository := repositories.NewModelRepository(db, logs.GetLoggerFromString("ERROR"))
	if *url != "" {
		err = classify(repository, *url)
	} else {
		err = list(repository, *limit)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func list(repository repositories.IModelRepository, limit int) error {
	records, err := repository.List(limit)
	if err != nil {
		return err
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Trained at", "Samples", "Accuracy", "Vocabulary"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)

	for _, record := range records {
		vocabulary := "invalid"
		if model, err := serializer.Decode(bytes.NewReader(record.Document)); err == nil {
			vocabulary = strconv.Itoa(model.VocabularySize())
		}
		table.Append([]string{
			record.ID.String(),
			record.TrainedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(record.Samples),
			fmt.Sprintf("%.2f", record.Accuracy),
			vocabulary,
		})
	}
	table.Render()
	return nil
}

func classify(repository repositories.IModelRepository, url string) error {
	record, err := repository.Latest()
	if err != nil {
		return err
	}
	model, err := serializer.Decode(bytes.NewReader(record.Document))
	if err != nil {
		return err
	}
	extractor, err := features.NewExtractor()
	if err != nil {
		return err
	}
	classifier, err := bayes.NewClassifier(extractor, model)
	if err != nil {
		return err
	}

	label, scores := classifier.Classify(url)
	fmt.Printf("%s\t%s\tlegitimate=%.4f phishing=%.4f\tmodel=%s\n",
		url, label, scores[0], scores[1], record.ID)
	return nil
}
