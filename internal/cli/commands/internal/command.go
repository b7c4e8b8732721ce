// Package internal provides shared utilities for CLI commands.
package internal

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/tagit/internal/arn"
	"github.com/mpyw/tagit/internal/cli/output"
	"github.com/mpyw/tagit/internal/tagging"
)

// CommandNotFound is a shared handler for unknown subcommands.
// It displays the command help and an error message.
func CommandNotFound(_ context.Context, cmd *cli.Command, command string) {
	_ = cli.ShowSubcommandHelp(cmd)
	w := lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer)
	output.Printf(w, "\nUnknown command: %s\n", command)
}

// ParseARNList splits a comma-separated ARN list, trimming entries and
// dropping empty ones. It returns an error when no entries remain or when
// any entry fails the ARN prefix check.
func ParseARNList(s string) ([]string, error) {
	var arns []string

	for entry := range strings.SplitSeq(s, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			arns = append(arns, entry)
		}
	}

	if len(arns) == 0 {
		return nil, fmt.Errorf("no resource ARNs provided")
	}

	invalid := lo.Reject(arns, func(a string, _ int) bool { return arn.IsValid(a) })
	if len(invalid) > 0 {
		return nil, fmt.Errorf("invalid resource ARN(s): %s", strings.Join(invalid, ", "))
	}

	return arns, nil
}

// BuildTags merges tags from an optional INI file and the --tags flag value;
// flag values win on key collision. It returns an error when no valid tags
// remain.
func BuildTags(tagsFlag, tagsFile string) (map[string]string, error) {
	fileTags := map[string]string{}

	if tagsFile != "" {
		var err error

		fileTags, err = tagging.LoadFile(tagsFile)
		if err != nil {
			return nil, err
		}
	}

	tags := tagging.Merge(fileTags, tagging.Parse(tagsFlag))
	if len(tags) == 0 {
		return nil, fmt.Errorf("no valid tags provided: expected key1=value1,key2=value2")
	}

	return tags, nil
}
