// SPDX-FileCopyrightText: © 2025 Waifu Vault
//
// SPDX-License-Identifier: Apache-2.0

package utils

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

func getIniPath() string {
	iniPath, err := os.UserHomeDir()
	if err != nil {
		iniPath = "."
	}
	return iniPath + string(os.PathSeparator) + IniName
}

// IniPath is where the CLI keeps its persisted configuration.
func IniPath() string {
	return getIniPath()
}

func LoadIni(createOnMissing bool) *ini.File {
	cfg, err := ini.Load(getIniPath())
	if err != nil {
		if !createOnMissing {
			log.Printf("Failed to read ini file: %v\n", err)
			os.Exit(1)
		}
		return ini.Empty()
	}
	return cfg
}

func SaveIni(cfg *ini.File) {
	if err := cfg.SaveTo(getIniPath()); err != nil {
		log.Printf("Failed to update ini file: %v\n", err)
		os.Exit(1)
	}
}

// ReflectValue renders a JSON-decoded value as an INI-friendly string.
// Integral floats print without an exponent so sizes survive a
// round trip through the cache.
func ReflectValue(v interface{}) string {
	f := reflect.ValueOf(v)
	switch f.Kind() {
	case reflect.String:
		return f.String()
	case reflect.Int, reflect.Int64:
		return fmt.Sprint(f.Int())
	case reflect.Uint, reflect.Uint64:
		return fmt.Sprint(f.Uint())
	case reflect.Float64:
		f64 := f.Float()
		if f64 == math.Trunc(f64) {
			return strconv.FormatInt(int64(f64), 10)
		}
		return fmt.Sprint(f64)
	case reflect.Bool:
		return fmt.Sprint(f.Bool())
	case reflect.Slice:
		var s []string
		for _, el := range f.Interface().([]interface{}) {
			if reflect.ValueOf(el).Kind() == reflect.String {
				s = append(s, el.(string))
			}
		}
		return strings.Join(s, ",")
	default:
		return ""
	}
}

func TranslateFormat(format string) string {
	switch strings.ToLower(format) {
	case "json":
		return "json"
	case "yaml", "yml":
		return "yaml"
	default:
		return "short"
	}
}

func WaitForConfirmation(msg string) {
	buf := bufio.NewReader(os.Stdin)
	for {
		log.Printf(msg)
		userInput, err := buf.ReadBytes('\n')
		if err != nil {
			log.Printf("Error in reading user input: %v\n", err)
			os.Exit(1)
		}
		yn := strings.TrimSpace(string(userInput))
		switch strings.ToLower(yn) {
		case "y", "":
			return
		case "n":
			log.Println("Cancelling.")
			os.Exit(0)
		default:
			log.Println("Invalid input, must be y or n")
		}
	}
}

// FetchJSON performs a plain GET against an absolute URL and decodes the
// JSON answer into out. Used for unauthenticated service metadata.
func FetchJSON(rawURL string, out any) error {
	resp, err := http.Get(rawURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != 200 {
		return fmt.Errorf("vault returned a non-200 status code: %v", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, out)
}

func PrettyJSON(b []byte) string {
	var out bytes.Buffer
	if err := json.Indent(&out, b, "", "  "); err != nil {
		return string(b) // fallback: print as-is
	}
	return out.String()
}
