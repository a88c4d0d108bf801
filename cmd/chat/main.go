package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/adiouf/finsight/internal/dataset"
	chatsvc "github.com/adiouf/finsight/internal/service/chat"
	"github.com/adiouf/finsight/internal/service/interpreter"
	"github.com/adiouf/finsight/internal/service/responder"
	"github.com/adiouf/finsight/pkg/logger"
)

func main() {
	csvPath := flag.String("file", "", "Path to a financial dataset CSV (default: bundled data)")
	verbose := flag.Bool("verbose", false, "Log interpreted requests to stderr")
	flag.Parse()

	zlog := zap.NewNop()
	if *verbose {
		zlog = logger.Must(logger.NewDevelopment())
		defer func() { _ = zlog.Sync() }()
	}

	store, err := loadStore(*csvPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dataset: %v\n", err)
		os.Exit(1)
	}

	svc := chatsvc.NewService(
		interpreter.NewService(zlog.Named("interpreter")),
		responder.NewService(store, zlog.Named("responder")),
		nil,
		zlog.Named("chat"),
	)

	fmt.Println("Financial insights assistant. Ask about Microsoft, Tesla or Apple; empty line to quit.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}

		answer, err := svc.Ask(context.Background(), query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			continue
		}
		fmt.Println(answer.Text)
		fmt.Println()
	}
}

func loadStore(csvPath string) (*dataset.Store, error) {
	if csvPath != "" {
		return dataset.FromCSVFile(csvPath)
	}
	return dataset.Default()
}
