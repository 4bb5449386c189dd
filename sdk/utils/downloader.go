// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

/* ------------ logging helpers (stderr) ------------ */

func Infof(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[INFO] "+format+"\n", a...)
}

func Warnf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, "[WARN] "+format+"\n", a...)
}

// HumanSize renders a byte count for humans.
func HumanSize(n int64) string {
	const (
		kb = 1024
		mb = 1024 * kb
		gb = 1024 * mb
	)
	switch {
	case n >= gb:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gb))
	case n >= mb:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mb))
	case n >= kb:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%d B", n)
	}
}

/* ------------ saving downloaded content ------------ */

// ResolveTarget picks the local path for a downloaded file:
// - dst is empty         → filename in the cwd
// - dst is a directory   → dst/filename
// - dst is a file        → dst
// - dst does not exist   → create directory dst, use dst/filename
func ResolveTarget(dst, filename string) (string, error) {
	if dst == "" {
		return filename, nil
	}
	info, statErr := os.Stat(dst)
	if statErr == nil {
		if info.IsDir() {
			return filepath.Join(dst, filename), nil
		}
		return dst, nil // existing file, overwrite
	}
	if os.IsNotExist(statErr) {
		if mkErr := os.MkdirAll(dst, 0o755); mkErr != nil {
			return "", mkErr
		}
		return filepath.Join(dst, filename), nil
	}
	return "", statErr
}

// SaveFile writes downloaded content to target. Vault downloads arrive
// fully in memory, so this is a single write, not a stream.
func SaveFile(target string, data []byte) error {
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", target, err)
	}
	Infof("Saved %s → %s", HumanSize(int64(len(data))), target)
	return nil
}
