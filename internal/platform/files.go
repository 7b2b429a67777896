package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Command parameters
const (
	MacOSSelectFlag    = "-R"
	WindowsSelectParam = "/select,"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// tempFilePattern is used for the sibling file written before rename
const tempFilePattern = ".%s-*.tmp"

// backupTimeLayout stamps files moved aside by BackupFile
const backupTimeLayout = "20060102-150405"

// ResolveDataFile turns a possibly relative data file path into an absolute one.
// Relative paths resolve against the current working directory.
func ResolveDataFile(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("empty data file path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}
	return absPath, nil
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// WriteFileAtomic replaces path with data. The bytes go to a temp file in the
// same directory first, so readers see either the old or the new content.
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := CreateDirectoryIfNotExists(dir); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, fmt.Sprintf(tempFilePattern, filepath.Base(path)))
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// BackupFile moves path to a timestamped sibling and returns the new name.
// An existing backup is never replaced.
func BackupFile(path string) (string, error) {
	base := fmt.Sprintf("%s.%s", path, time.Now().Format(backupTimeLayout))
	backup := base + ".bak"
	for i := 1; ; i++ {
		if _, err := os.Lstat(backup); os.IsNotExist(err) {
			break
		}
		backup = fmt.Sprintf("%s-%d.bak", base, i)
	}
	if err := os.Rename(path, backup); err != nil {
		return "", fmt.Errorf("failed to back up %s: %w", path, err)
	}
	return backup, nil
}

// OpenFileInManager opens the file in the system file manager and highlights it
func OpenFileInManager(filePath string) error {
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}
	if _, err := os.Stat(absPath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, MacOSSelectFlag, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, WindowsSelectParam, absPath).Run()
	case OSLinux:
		return openFileInManagerLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileInManagerLinux opens directory containing file on Linux
// Note: File selection is not standardized on Linux, so we open the parent directory
func openFileInManagerLinux(filePath string) error {
	dir := filepath.Dir(filePath)

	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
