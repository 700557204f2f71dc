// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The mtgen Authors

package typegen

import (
	"os"
	"strings"

	"github.com/noqcks/francescov1-mongoose-tsgen/internal/errors"
)

// Sentinels delimit the hand-written region of a generated file. They are
// byte-stable: changing them orphans the custom content of existing files.
type Sentinels struct {
	Header string
	Footer string
}

var (
	// FlatSentinels are written at the top level of flat files.
	FlatSentinels = Sentinels{
		Header: "// ########################################## CUSTOM INTERFACES ########################################## //\n",
		Footer: "// ######################################## END CUSTOM INTERFACES ######################################## //\n",
	}

	// AugmentSentinels are written inside the declare module block.
	AugmentSentinels = Sentinels{
		Header: "\t// ########################################## CUSTOM INTERFACES ########################################## //\n",
		Footer: "\t// ######################################## END CUSTOM INTERFACES ######################################## //\n",
	}
)

// Wrap returns custom framed by the sentinels.
func (s Sentinels) Wrap(custom string) string {
	return s.Header + custom + s.Footer
}

// Extract returns the text strictly between Header and the first Footer after it.
func (s Sentinels) Extract(text string) (string, bool) {
	_, rest, ok := strings.Cut(text, s.Header)
	if !ok {
		return "", false
	}
	custom, _, ok := strings.Cut(rest, s.Footer)
	if !ok {
		return "", false
	}
	return custom, true
}

// ExtractCustom recovers the custom region of previously generated output in
// either layout, so switching layouts keeps hand-written content. The
// indented augment markers are tried first since the flat ones are their
// substrings. It returns "" when no complete region is found.
func ExtractCustom(previous string) string {
	for _, s := range []Sentinels{AugmentSentinels, FlatSentinels} {
		if custom, ok := s.Extract(previous); ok {
			return custom
		}
	}
	return ""
}

// ReadPrevious reads a previously generated file. A missing file is not an
// error and yields "".
func ReadPrevious(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", errors.Wrapf(err, "reading previous output %s", path)
	}
	return string(data), nil
}
