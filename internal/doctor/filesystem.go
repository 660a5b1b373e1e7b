package doctor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"velo/internal/paths"
)

// CheckDirectories reports each layout directory in declaration order.
func CheckDirectories(layout paths.Layout) []CheckOutcome {
	dirs := layout.Directories()
	outcomes := make([]CheckOutcome, 0, len(dirs))

	for _, dir := range dirs {
		info, err := os.Stat(dir.Path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			outcomes = append(outcomes, Issue(dir.Name, MSG_DIR_MISSING, dir.Name, dir.Path).AsFixable())
		case err != nil:
			outcomes = append(outcomes, Issue(dir.Name, MSG_DIR_UNREADABLE, dir.Name, dir.Path, err))
		case !info.IsDir():
			outcomes = append(outcomes, Issue(dir.Name, MSG_DIR_NOT_DIR, dir.Name, dir.Path))
		default:
			outcomes = append(outcomes, Ok(dir.Name, MSG_DIR_OK, dir.Name, dir.Path))
		}
	}
	return outcomes
}

// CheckWritePermission proves tmpDir is writable by creating and removing a
// uniquely named file. The file is removed on every path out of the probe.
// A missing tmpDir is marked fixable, since recreating the layout repairs it.
func CheckWritePermission(tmpDir string) CheckOutcome {
	if err := writeProbe(tmpDir); err != nil {
		outcome := Issue(SECTION_PERMISSIONS, MSG_WRITE_FAILED).WithDetails(fmt.Sprintf(MSG_ERROR_DETAIL, err))
		if errors.Is(err, fs.ErrNotExist) {
			outcome = outcome.AsFixable()
		}
		return outcome
	}
	return Ok(SECTION_PERMISSIONS, MSG_WRITE_OK)
}

func writeProbe(dir string) (err error) {
	path := filepath.Join(dir, PROBE_FILE_PREFIX+uuid.NewString())

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0600)
	if err != nil {
		return err
	}
	defer func() {
		if rmErr := os.Remove(path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) && err == nil {
			err = rmErr
		}
	}()

	if _, err := file.WriteString("velo"); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

func (d *Doctor) checkDirectories(_ context.Context) []CheckOutcome {
	return CheckDirectories(d.layout)
}

func (d *Doctor) checkPermissions(_ context.Context) CheckOutcome {
	return CheckWritePermission(d.layout.Tmp)
}
