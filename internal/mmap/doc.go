// Package mmap maps label files read-only so headers and payloads decode
// without an intermediate copy.
//
//	f, err := mmap.Open("train.lbl")
//	if err != nil { ... }
//	defer f.Close()
//
//	magic := f.Peek(4)
//	payload, _ := f.Section(64, f.Len()-64)
//
// Access hints are advisory; Windows builds ignore them.
// Slices handed out by Bytes and Peek must not be used after Close.
package mmap
