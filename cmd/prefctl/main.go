// Command prefctl looks up Japanese prefectures from the command line.
//
//	prefctl list [-class circuit|metropolis|urban|prefecture]
//	prefctl get <code>
//	prefctl resolve [-script kanji|hiragana|katakana|english] <name>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/todofuken/api/prefecture"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "list":
		err = runList(os.Args[2:])
	case "get":
		err = runGet(os.Args[2:])
	case "resolve":
		err = runResolve(os.Args[2:])
	case "help", "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "prefctl: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "prefctl: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage:")
	fmt.Fprintln(os.Stderr, "  prefctl list [-class label] [-json]")
	fmt.Fprintln(os.Stderr, "  prefctl get [-json] <code>")
	fmt.Fprintln(os.Stderr, "  prefctl resolve [-script name] [-json] <name>")
}

func runList(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	classLabel := fs.String("class", "", "restrict to an administrative class")
	asJSON := fs.Bool("json", false, "emit JSON instead of a table")
	if err := fs.Parse(args); err != nil {
		return err
	}

	var (
		class    prefecture.Class
		hasClass bool
	)
	if *classLabel != "" {
		parsed, ok := prefecture.ParseClass(strings.ToLower(*classLabel))
		if !ok {
			return fmt.Errorf("unknown class %q", *classLabel)
		}
		class = parsed
		hasClass = true
	}

	var prefs []prefecture.Prefecture
	for _, pref := range prefecture.All() {
		if hasClass && pref.Class() != class {
			continue
		}
		prefs = append(prefs, pref)
	}

	if *asJSON {
		payloads := make([]prefecturePayload, 0, len(prefs))
		for _, pref := range prefs {
			payloads = append(payloads, buildPayload(pref))
		}
		return printJSON(payloads)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tCLASS\tKANJI\tSHORT\tENGLISH")
	for _, pref := range prefs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			pref.Code(), pref.Class(), pref.Kanji(), pref.KanjiShort(), pref.English())
	}
	return w.Flush()
}

func runGet(args []string) error {
	fs := flag.NewFlagSet("get", flag.ExitOnError)
	asJSON := fs.Bool("json", false, "emit JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("get expects exactly one code")
	}

	code, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("code must be an integer: %q", fs.Arg(0))
	}

	pref, err := prefecture.FindByCode(code)
	if err != nil {
		return err
	}
	return printPrefecture(pref, *asJSON)
}

func runResolve(args []string) error {
	fs := flag.NewFlagSet("resolve", flag.ExitOnError)
	script := fs.String("script", "", "restrict matching to one writing system")
	asJSON := fs.Bool("json", false, "emit JSON instead of text")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return errors.New("resolve expects exactly one name")
	}

	query := fs.Arg(0)
	var (
		pref prefecture.Prefecture
		err  error
	)
	switch strings.ToLower(*script) {
	case "":
		pref, err = prefecture.Find(query)
	case "kanji":
		pref, err = prefecture.FindByKanji(query)
	case "hiragana":
		pref, err = prefecture.FindByHiragana(query)
	case "katakana":
		pref, err = prefecture.FindByKatakana(query)
	case "english":
		pref, err = prefecture.FindByEnglish(query)
	default:
		return fmt.Errorf("unknown script %q", *script)
	}
	if err != nil {
		return err
	}
	return printPrefecture(pref, *asJSON)
}

type prefecturePayload struct {
	Code          int    `json:"code"`
	Class         string `json:"class"`
	Kanji         string `json:"kanji"`
	KanjiShort    string `json:"kanji_short"`
	Hiragana      string `json:"hiragana"`
	HiraganaShort string `json:"hiragana_short"`
	Katakana      string `json:"katakana"`
	KatakanaShort string `json:"katakana_short"`
	English       string `json:"english"`
}

func buildPayload(pref prefecture.Prefecture) prefecturePayload {
	return prefecturePayload{
		Code:          pref.Code(),
		Class:         pref.Class().String(),
		Kanji:         pref.Kanji(),
		KanjiShort:    pref.KanjiShort(),
		Hiragana:      pref.Hiragana(),
		HiraganaShort: pref.HiraganaShort(),
		Katakana:      pref.Katakana(),
		KatakanaShort: pref.KatakanaShort(),
		English:       pref.English(),
	}
}

func printPrefecture(pref prefecture.Prefecture, asJSON bool) error {
	if asJSON {
		return printJSON(buildPayload(pref))
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "code\t%d\n", pref.Code())
	fmt.Fprintf(w, "class\t%s\n", pref.Class())
	fmt.Fprintf(w, "kanji\t%s\n", pref.Kanji())
	fmt.Fprintf(w, "kanji short\t%s\n", pref.KanjiShort())
	fmt.Fprintf(w, "hiragana\t%s\n", pref.Hiragana())
	fmt.Fprintf(w, "hiragana short\t%s\n", pref.HiraganaShort())
	fmt.Fprintf(w, "katakana\t%s\n", pref.Katakana())
	fmt.Fprintf(w, "katakana short\t%s\n", pref.KatakanaShort())
	fmt.Fprintf(w, "english\t%s\n", pref.English())
	return w.Flush()
}

func printJSON(value any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
