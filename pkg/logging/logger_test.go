package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevels(t *testing.T) {
	cases := []struct {
		level      Level
		wantOut    string
		wantErrOut string
	}{
		{LevelSilent, "", "boom\n"},
		{LevelNormal, "progress\n", "careful\nboom\n"},
		{LevelVerbose, "progress\ndetail\n", "careful\nboom\n"},
	}

	for _, tc := range cases {
		var out, errOut bytes.Buffer
		log := New(tc.level, &out, &errOut)

		log.Infof("progress")
		log.Debugf("detail")
		log.Warnf("careful")
		log.Errorf("boom")

		if out.String() != tc.wantOut {
			t.Fatalf("level %d out = %q, want %q", tc.level, out.String(), tc.wantOut)
		}
		if errOut.String() != tc.wantErrOut {
			t.Fatalf("level %d errOut = %q, want %q", tc.level, errOut.String(), tc.wantErrOut)
		}
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var log *Logger
	log.Infof("progress")
	log.Debugf("detail")
	log.Warnf("careful")
	if log.Verbose() {
		t.Fatal("nil logger reports verbose")
	}
}

func TestFormatting(t *testing.T) {
	var out bytes.Buffer
	log := New(LevelNormal, &out, &out)
	log.Infof("wrote %d icon(s) to %s", 3, "heroicons/heroicons.templ")
	if !strings.Contains(out.String(), "wrote 3 icon(s) to heroicons/heroicons.templ") {
		t.Fatalf("output = %q", out.String())
	}
}
