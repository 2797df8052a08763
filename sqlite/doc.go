// Package sqlite keeps named label sets in a SQLite database using the
// pure-Go modernc.org/sqlite driver.
//
// Each set is a row in label_sets plus one row per label in label_values.
// A Set implements fileio.Reader and fileio.Writer, so a label store can load
// from and save to a database exactly as it does with files:
//
//	db, err := sqlite.Open(ctx, "labels.db")
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	err = labels.Save(ctx, db.Set("train"))
//
// SQLite stores NaN as NULL; NULL values read back as NaN.
package sqlite
