// operation_help.go

/**
 * Copyright (C) Naren Yellavula - All Rights Reserved
 *
 * This source code is protected under international copyright law.  All rights
 * reserved and protected by the copyright holders.
 * This file is confidential and only available to authorized individuals with the
 * permission of the copyright holders.  If you encounter this file and do not have
 * permission, please contact the copyright holders and delete this file.
 */

package main

import (
	"fmt"
	"strings"

	"github.com/cybrota/avlmap/console"
)

// getOperationHelp returns the markdown help of the operation named by the
// first part. With no parts it lists every operation.
func getOperationHelp(d *console.Dispatcher, cmdParts []string) (string, error) {
	if len(cmdParts) == 0 {
		return operationOverview(d), nil
	}

	usage, err := d.Usage(cmdParts[0])
	if err != nil {
		return "", fmt.Errorf("no help found for operation %q", strings.Join(cmdParts, " "))
	}
	return usage, nil
}

func operationOverview(d *console.Dispatcher) string {
	var b strings.Builder
	b.WriteString("# Operations\n\n")
	for _, name := range d.Names() {
		usage, err := d.Usage(name)
		if err != nil {
			continue
		}
		title, desc, _ := strings.Cut(usage, "\n\n")
		fmt.Fprintf(&b, "* **%s**: %s\n", strings.TrimPrefix(title, "# "), firstSentence(desc))
	}
	b.WriteString("\nType `help OP` for the full page of one operation.\n")
	return b.String()
}

func firstSentence(s string) string {
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}

// splitLine splits a console line into parts.
func splitLine(line string) ([]string, error) {
	cmd, err := console.Parse(line)
	if err != nil {
		return nil, err
	}
	return cmd.Parts, nil
}
