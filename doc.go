// Package labelvec provides a subset-aware dense label vector.
//
// A DenseLabels holds one float64 label per training example. Every logical
// access goes through an injected subset.View, so a selection of examples
// (a fold, a filtered slice, a permutation) can be addressed without copying
// the underlying storage.
//
// # Quick Start
//
//	view := subset.NewActive()
//	labels := labelvec.New(0, labelvec.WithView(view))
//	if err := labels.SetLabels([]float64{10, 20, 30, 40}); err != nil {
//	    log.Fatal(err)
//	}
//
// # Subsets
//
// The store never owns the view. Whoever builds the store activates and
// clears selections on it between calls:
//
//	view.Set(subset.Indices{1, 3})
//	labels.NumLabels() // 2
//	labels.Label(0)    // 20
//	labels.Labels()    // InvalidStateError: a subset is active
//	view.Clear()
//
// Operations that replace or expose the whole storage (SetLabels,
// SetIntLabels, Labels, Save) refuse to run while a subset is active.
// LabelsCopy works under a subset and returns only the visible labels.
//
// # Errors
//
// Index misuse is treated asymmetrically. Label and IntLabel panic with a
// *PreconditionError on an index outside the logical range, while SetLabel
// and SetIntLabel report false and leave storage untouched. Typed errors
// unwrap to the sentinels ErrInvalidState, ErrPrecondition and ErrFormat.
//
// # Persistence
//
// Load and Save speak to fileio.Reader and fileio.Writer. The fileio, sqlite
// and blobstore packages provide adapters for local files, SQLite databases,
// S3 and MinIO:
//
//	err := labels.Save(ctx, fileio.NewFile("train.lbl", fileio.WithCompression(fileio.CompressionZSTD)))
//	loaded, err := labelvec.NewFromReader(ctx, fileio.NewFile("train.lbl"))
//
// Text formats use strconv, which is independent of the process locale.
//
// # Concurrency
//
// DenseLabels carries no lock. Callers serialise access.
package labelvec
