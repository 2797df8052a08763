package labelvec_test

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/labelvec"
	"github.com/hupe1980/labelvec/fileio"
	"github.com/hupe1980/labelvec/filter"
	"github.com/hupe1980/labelvec/subset"
)

func Example() {
	view := subset.NewActive()
	labels := labelvec.New(0, labelvec.WithView(view))
	if err := labels.SetLabels([]float64{10, 20, 30, 40}); err != nil {
		log.Fatal(err)
	}

	view.Set(subset.Indices{1, 3})
	fmt.Println(labels.NumLabels(), labels.Label(0), labels.Label(1))

	_, err := labels.Labels()
	fmt.Println(errors.Is(err, labelvec.ErrInvalidState))
	// Output:
	// 2 20 40
	// true
}

func ExampleDenseLabels_SetLabel() {
	labels := labelvec.New(2)
	fmt.Println(labels.SetLabel(1, 0.5))
	fmt.Println(labels.SetLabel(2, 0.5))
	// Output:
	// true
	// false
}

func ExampleDenseLabels_IntLabels() {
	labels := labelvec.New(0)
	if err := labels.SetIntLabels([]int32{0, 2, 1}); err != nil {
		log.Fatal(err)
	}
	ints, _ := labels.IntLabels()
	fmt.Println(ints)

	labels.SetLabel(0, 0.5)
	_, err := labels.IntLabels()
	fmt.Println(err)
	// Output:
	// [0 2 1]
	// label 0 = 0.5: label is not an integer
}

func ExampleDenseLabels_Save() {
	dir, err := os.MkdirTemp("", "labelvec-example")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(dir)

	ctx := context.Background()
	file := fileio.NewFile(filepath.Join(dir, "train.lbl"), fileio.WithCompression(fileio.CompressionZSTD))

	labels := labelvec.New(3)
	labels.SetToOne()
	if err := labels.Save(ctx, file); err != nil {
		log.Fatal(err)
	}

	loaded, err := labelvec.NewFromReader(ctx, file)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(loaded.LabelsCopy())
	// Output: [1 1 1]
}

func Example_filter() {
	view := subset.NewActive()
	labels := labelvec.New(0, labelvec.WithView(view))
	if err := labels.SetLabels([]float64{-1, 1, 1, -1, 1}); err != nil {
		log.Fatal(err)
	}

	pred, err := filter.Compile(filter.EngineExpr, "label > 0 && index > 1")
	if err != nil {
		log.Fatal(err)
	}
	storage, _ := labels.Labels()
	sel, err := filter.Select(storage, pred)
	if err != nil {
		log.Fatal(err)
	}

	view.Set(sel)
	for i, v := range labels.All() {
		fmt.Println(i, v)
	}
	// Output:
	// 0 1
	// 1 1
}
