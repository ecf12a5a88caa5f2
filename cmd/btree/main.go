// Command btree opens an interactive console over an in-memory B-tree.
//
//	btree -degree 3 -seed -records 20
//	btree -strings -seed
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strconv"

	"github.com/go-faker/faker/v4"

	"github.com/katalvlaran/lvlath-btree/internal/cli"
)

var (
	degree      *int
	useStrings  *bool
	shouldSeed  *bool
	seedRecords *int
	noColor     *bool
)

func setupFlags() {
	degree = flag.Int("degree", cli.DefaultDegree, "Minimum degree t of the tree (t ≥ 2).")
	useStrings = flag.Bool("strings", false, "Use string keys instead of integers.")
	shouldSeed = flag.Bool("seed", false, "Insert random keys before the console starts.")
	seedRecords = flag.Int("records", 20, "Number of random keys to insert with -seed.")
	noColor = flag.Bool("no-color", false, "Disable coloured output.")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "\nB-Tree console\n\nArguments:")
		flag.PrintDefaults()
	}
	flag.Parse()
}

// seedKeys generates n random keys: integers in [1, 5n] or generated words.
func seedKeys(n int, words bool) []string {
	keys := make([]string, 0, n)
	for i := 0; i < n; i++ {
		if words {
			keys = append(keys, faker.Word())
			continue
		}
		keys = append(keys, strconv.Itoa(rand.Intn(5*n)+1))
	}

	return keys
}

func main() {
	setupFlags()

	cfg := cli.Config{
		Degree:  *degree,
		Strings: *useStrings,
		NoColor: *noColor,
		Prompt:  true,
	}
	if err := cli.ValidateConfig(cfg); err != nil {
		log.Fatal(err)
	}
	if *seedRecords < 0 {
		log.Fatalf("records must be ≥ 0, got %d", *seedRecords)
	}

	console := cli.New(cfg, os.Stdin, os.Stdout)
	if *shouldSeed {
		n, err := console.Load(seedKeys(*seedRecords, *useStrings))
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("seeded %d keys\n", n)
	}

	console.PrintHelp()
	if err := console.Run(); err != nil {
		log.Fatal(err)
	}
}
