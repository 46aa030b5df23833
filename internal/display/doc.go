// Package display renders analysis results and user-facing notices.
//
// # Reports
//
// A Renderer turns an ordered list of (label, count) rows into one of three
// outputs, chosen by RenderOptions.Format:
//
//   - console: tab-separated rows (column order set by Layout) then a summary line
//   - txt: the same lines in <OutputDir>/<BaseName>.txt
//   - csv: a quoted header, quoted rows and a quoted summary row in <OutputDir>/<BaseName>.csv
//
// Options are validated when the renderer is built, so a file format without
// an output directory fails with ErrValidation before anything is created:
//
//	r, err := display.NewRenderer(display.RenderOptions{Format: display.FormatCSV, OutputDir: "out"}, afero.NewOsFs(), os.Stdout)
//	if err != nil {
//	    return err
//	}
//	path, err := r.Render(display.Report{
//	    BaseName:    "urls_count",
//	    LabelHeader: "URL",
//	    Layout:      display.CountFirst,
//	    Rows:        rows,
//	    Summary:     "Found 2 unique URLs",
//	})
//
// Files are written through filelock.LockAndWrite, so a report file is either
// complete or absent.
//
// # Warnings
//
// Warning prints a yellow, indented notice:
//
//	display.NotImplemented("shares", "result.json").Display(os.Stdout)
package display
