package store

import (
	"fmt"
	"io"
	"os"
)

// BackupError means Reset could not copy the store to the backup slot. The
// store file is left as it was.
type BackupError struct {
	Path string
	Err  error
}

func (e *BackupError) Error() string {
	return fmt.Sprintf("couldn't back up todo file to %s, no action taken: %v", e.Path, e.Err)
}

func (e *BackupError) Unwrap() error { return e.Err }

// Reset deletes the store file, copying it to the backup path first unless
// backups are disabled.
func (s *Store) Reset() error {
	if !s.cfg.NoBackup {
		if err := copyFile(s.cfg.Path, s.cfg.BackupPath); err != nil {
			return &BackupError{Path: s.cfg.BackupPath, Err: err}
		}
		s.log.Debug("backed up todo file", "from", s.cfg.Path, "to", s.cfg.BackupPath)
	}
	if err := os.Remove(s.cfg.Path); err != nil {
		return fmt.Errorf("clearing todo file: %w", err)
	}
	return nil
}

// Restore copies the backup over the store file.
func (s *Store) Restore() error {
	if err := copyFile(s.cfg.BackupPath, s.cfg.Path); err != nil {
		return fmt.Errorf("unable to restore backup file from %s: %w", s.cfg.BackupPath, err)
	}
	s.log.Debug("restored todo file", "from", s.cfg.BackupPath, "to", s.cfg.Path)
	return nil
}

func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}
