// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/saferwall/sps"
)

// prettyPrint indents a JSON buffer for display, the same helper
// cmd/pedumper.go uses to print decoded PE structures.
func prettyPrint(buf []byte) string {
	var pretty bytes.Buffer
	if err := json.Indent(&pretty, buf, "", "\t"); err != nil {
		log.Println("JSON parse error: ", err)
		return string(buf)
	}
	return pretty.String()
}

func isDirectory(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

func dump(cmd *cobra.Command, args []string) {
	for _, path := range args {
		if !isDirectory(path) {
			dumpFile(path)
			continue
		}
		filepath.Walk(path, func(p string, info os.FileInfo, err error) error {
			if err != nil || info.IsDir() {
				return nil
			}
			dumpFile(p)
			return nil
		})
	}
}

// recordString is the projection printed by --strings: the record's
// identity plus whatever it decodes to through String()/PathString().
type recordString struct {
	Identity   string `json:"identity"`
	ValueType  string `json:"value_type"`
	String     string `json:"string,omitempty"`
	PathString string `json:"path_string,omitempty"`
}

func dumpFile(path string) {
	log.Printf("processing %s", path)

	f, err := sps.New(path, &sps.Options{Codepage: codepage})
	if err != nil {
		log.Printf("error opening %s: %v", path, err)
		return
	}
	defer f.Close()

	if err := f.Parse(); err != nil {
		log.Printf("error parsing %s: %v", path, err)
		return
	}

	if wantAll || wantStore {
		store, _ := json.Marshal(struct {
			Sets int `json:"sets"`
		}{len(f.Store.Sets)})
		fmt.Println(prettyPrint(store))
	}

	if wantAll || wantSet {
		sets, _ := json.Marshal(f.Store.Sets)
		fmt.Println(prettyPrint(sets))
	}

	if wantAll || wantRecord {
		for _, set := range f.Store.Sets {
			records, _ := json.Marshal(set.Records)
			fmt.Println(prettyPrint(records))
		}
	}

	if wantAll || wantStrings {
		var out []recordString
		for _, set := range f.Store.Sets {
			for _, rec := range set.Records {
				identity := fmt.Sprintf("type=0x%08x", rec.EntryType)
				if rec.Kind == sps.RecordNamed {
					name, _, _ := rec.EntryNameUTF8()
					identity = fmt.Sprintf("name=%q", name)
				}

				entry := recordString{Identity: identity, ValueType: rec.ValueType.String()}
				if s, err := rec.String(); err == nil {
					entry.String = s
				} else if s, err := rec.PathString(); err == nil {
					entry.PathString = s
				}
				out = append(out, entry)
			}
		}
		strs, _ := json.Marshal(out)
		fmt.Println(prettyPrint(strs))
	}
}
