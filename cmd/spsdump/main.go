// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/saferwall/sps"
)

var (
	wantStore   bool
	wantSet     bool
	wantRecord  bool
	wantStrings bool
	wantAll     bool
	codepage    int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "spsdump",
		Short: "A serialized property store parser",
		Long:  "A serialized-property-store decoder built for robustness against hostile input, brought to you by Saferwall (c) 2018 MIT",
	}

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("You are using version 0.1.0")
		},
	}

	dumpCmd := &cobra.Command{
		Use:   "dump [path...]",
		Short: "Dumps the sets and records of one or more property stores",
		Args:  cobra.MinimumNArgs(1),
		Run:   dump,
	}
	dumpCmd.Flags().BoolVarP(&wantStore, "store", "", false, "dump the store summary")
	dumpCmd.Flags().BoolVarP(&wantSet, "set", "", false, "dump each set's header")
	dumpCmd.Flags().BoolVarP(&wantRecord, "record", "", false, "dump each set's records")
	dumpCmd.Flags().BoolVarP(&wantStrings, "strings", "", false, "dump decoded string/path-string values")
	dumpCmd.Flags().BoolVarP(&wantAll, "all", "", false, "dump everything")
	dumpCmd.Flags().IntVarP(&codepage, "codepage", "c", sps.DefaultCodepage, "ascii_codepage used for VT_LPSTR/VT_BSTR payloads")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(dumpCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
