package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/shabbyrobe/golib/assert"
)

func fold(args ...string) (string, error) {
	var out bytes.Buffer
	foldDump, foldJSON = false, false
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestFold(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := fold("1", "/", "3")
	tt.MustOK(err)
	tt.MustAssert(strings.Contains(out, "f64:  0.3333333333333333 (native f64: 0.3333333333333333)"), out)
	tt.MustAssert(strings.Contains(out, "fraction:true int:false"), out)
}

func TestFoldCmp(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := fold("--", "-0", "cmp", "0")
	tt.MustOK(err)
	tt.MustEqual("-0 cmp 0: equal\n", out)
}

func TestFoldJSON(t *testing.T) {
	tt := assert.WrapTB(t)
	out, err := fold("--json", "--", "-7", "mod", "2")
	tt.MustOK(err)

	var res struct {
		Result   string
		Float64  string
		Native   string
		Float128 string
	}
	tt.MustOK(json.Unmarshal([]byte(out), &res))
	tt.MustEqual("1", res.Result)
	tt.MustEqual("1", res.Float64)
	tt.MustEqual("", res.Native)
	tt.MustEqual("0x3fff0000000000000000000000000000", res.Float128)
}

func TestFoldErrors(t *testing.T) {
	tt := assert.WrapTB(t)
	_, err := fold("1", "^", "2")
	tt.MustAssert(err != nil)

	_, err = fold("1.2.3", "+", "2")
	tt.MustAssert(err != nil)

	_, err = fold("1", "+")
	tt.MustAssert(err != nil)
}
