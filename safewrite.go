package truchet

import (
	"fmt"
	"io/ioutil"
	"os"
	"path"

	log "github.com/sirupsen/logrus"
)

const tmpFolder = "./"

// Writer is anything SafeWrite can save.
type Writer interface {
	WritePNG(fname string) error
	WriteSVG(fname string) error
	WritePDF(fname string) error
}

// SafeWrite noisily saves to a tmp file and then moves it into place.
// It returns the final filename.
func (r *Random) SafeWrite(w Writer, prefix, ext string) (string, error) {
	fname := r.GetFilename(prefix, ext)
	if err := safeWrite(w, fname); err != nil {
		log.Errorf("Problem saving %s: %v", fname, err)
		return "", err
	}
	log.Infof("Saved to %s", fname)
	return fname, nil
}

// safeWrite writes to a temp file then renames atomically
func safeWrite(w Writer, fname string) error {
	if err := MaybeCreateDir(path.Dir(fname)); err != nil {
		return err
	}

	ext := path.Ext(fname)
	var write func(string) error
	switch ext {
	case ".png":
		write = w.WritePNG
	case ".svg":
		write = w.WriteSVG
	case ".pdf":
		write = w.WritePDF
	default:
		return fmt.Errorf("unsupported file format %s", ext)
	}

	tmpfile, err := ioutil.TempFile(tmpFolder, "tiles.*"+ext)
	if err != nil {
		return err
	}
	tmpfile.Close()
	if err := write(tmpfile.Name()); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}
	// Note: the folders here need to be on the same drive
	if err := os.Rename(tmpfile.Name(), fname); err != nil {
		os.Remove(tmpfile.Name())
		return err
	}

	return os.Chmod(fname, 0664)
}

// MaybeCreateDir creates `dir` (and parents) when missing.
func MaybeCreateDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0775)
}
