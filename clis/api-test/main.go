package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
)

const defaultBase = "http://localhost:9000"

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	base := os.Getenv("API_BASE")
	if base == "" {
		base = defaultBase
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "add":
		postJSON(base+"/planets/add", args)
	case "list":
		get(base + "/planets/list" + queryArg(args))
	case "getbyname":
		get(base + "/planets/getbyname/" + mustArg(args, 0))
	case "getbyid":
		get(base + "/planets/getbyid/" + mustArg(args, 0))
	case "deletebyid":
		del(base + "/planets/deletebyid/" + mustArg(args, 0))

	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Println(`Usage: cli <command> [options]

Commands:
  add         -d '{"name":"Tatooine","climate":"arid","terrain":"desert"}'  POST /planets/add
  list        ['?per_page=10&page=1&sort=name']                             GET  /planets/list
  getbyname   <name>                                                        GET  /planets/getbyname/:name
  getbyid     <id>                                                          GET  /planets/getbyid/:id
  deletebyid  <id>                                                          DELETE /planets/deletebyid/:id

Environment:
  API_BASE   override default http://localhost:9000`)
}

func mustArg(args []string, idx int) string {
	if len(args) <= idx {
		fmt.Fprintf(os.Stderr, "missing argument %d\n", idx+1)
		usage()
		os.Exit(1)
	}
	return args[idx]
}

func queryArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func get(url string) {
	do("GET", url, nil)
}

func del(url string) {
	do("DELETE", url, nil)
}

func postJSON(url string, args []string) {
	data := pickJSON(args)
	do("POST", url, data)
}

func pickJSON(args []string) io.Reader {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	body := fs.String("d", "", "request JSON body")
	fs.Parse(args)
	var r io.Reader
	if *body != "" {
		r = bytes.NewBufferString(*body)
	} else {
		// read from stdin
		stat, _ := os.Stdin.Stat()
		if (stat.Mode() & os.ModeCharDevice) == 0 {
			r = os.Stdin
		}
	}
	return r
}

func do(method, url string, body io.Reader) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		fmt.Println("req:", err)
		os.Exit(1)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("do:", err)
		os.Exit(1)
	}
	defer res.Body.Close()

	fmt.Printf("→ %s %s\n", method, url)
	fmt.Printf("← %d %s\n\n", res.StatusCode, http.StatusText(res.StatusCode))
	io.Copy(os.Stdout, res.Body)
	fmt.Println()
}
