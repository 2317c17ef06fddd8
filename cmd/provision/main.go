// Command provision creates a client group with a linked product owner,
// and optionally an address, through the backend API. If any step fails
// the resources created earlier in the run are deleted again.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/advisory/backend/internal/client"
	"github.com/advisory/backend/internal/infrastructure/config"
	"github.com/advisory/backend/internal/infrastructure/logger"
	"github.com/advisory/backend/internal/provision"
	"go.uber.org/zap"
)

func main() {
	var (
		baseURL   string
		timeout   time.Duration
		logLevel  string
		inputPath string
		groupName string
		groupType string
		firstname string
		surname   string
		dob       string
		email     string
		line1     string
		line2     string
		line3     string
		line4     string
		line5     string
	)

	flag.StringVar(&baseURL, "base-url", "", "API base URL (default from config, e.g. http://localhost:8080/api/v1)")
	flag.DurationVar(&timeout, "timeout", 0, "Per-request timeout (default from config)")
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.StringVar(&inputPath, "input", "", "Path to a JSON file with the full workflow input (replaces the field flags)")
	flag.StringVar(&groupName, "group-name", "", "Client group name (required)")
	flag.StringVar(&groupType, "group-type", "", "Client group type: family, trust, corporate")
	flag.StringVar(&firstname, "firstname", "", "Product owner first name (required)")
	flag.StringVar(&surname, "surname", "", "Product owner surname (required)")
	flag.StringVar(&dob, "dob", "", "Product owner date of birth (YYYY-MM-DD)")
	flag.StringVar(&email, "email", "", "Product owner email")
	flag.StringVar(&line1, "address-line-1", "", "Address line 1 (omit to skip creating an address)")
	flag.StringVar(&line2, "address-line-2", "", "Address line 2")
	flag.StringVar(&line3, "address-line-3", "", "Address line 3")
	flag.StringVar(&line4, "address-line-4", "", "Address line 4")
	flag.StringVar(&line5, "address-line-5", "", "Address line 5")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:      logLevel,
		Format:     "console",
		Output:     "stdout",
		TimeFormat: "2006-01-02 15:04:05",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	var input provision.Input
	if inputPath != "" {
		input, err = loadInput(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to read input file: %v\n", err)
			os.Exit(2)
		}
	} else {
		input = provision.Input{
			ProductOwner: client.ProductOwnerPayload{
				Firstname: firstname,
				Surname:   surname,
				DOB:       dob,
				Email:     email,
			},
			ClientGroup: client.ClientGroupPayload{
				Name: groupName,
				Type: groupType,
			},
		}
		if line1 != "" {
			input.Address = &client.AddressPayload{
				Line1: line1,
				Line2: line2,
				Line3: line3,
				Line4: line4,
				Line5: line5,
			}
		}
	}

	if input.ClientGroup.Name == "" || input.ProductOwner.Firstname == "" || input.ProductOwner.Surname == "" {
		fmt.Fprintln(os.Stderr, "group-name, firstname, and surname are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}
	if baseURL == "" {
		baseURL = cfg.Client.BaseURL
	}
	if timeout == 0 {
		timeout = cfg.Client.Timeout
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	api := client.New(baseURL, client.WithTimeout(timeout))
	workflow := provision.NewWorkflow(api, log)

	result, err := workflow.Run(ctx, input)
	if err != nil {
		log.Error("Provisioning failed", zap.Error(err))
		if len(result.RollbackErrors) > 0 {
			log.Warn("Some resources could not be rolled back",
				zap.Int("count", len(result.RollbackErrors)))
		}
		os.Exit(1)
	}

	if result.Address != nil {
		fmt.Println("address:      ", result.Address.ID)
	}
	fmt.Println("product owner:", result.ProductOwner.ID)
	fmt.Println("client group: ", result.ClientGroup.ID)
	fmt.Println("junction:     ", result.Junction.ID)
}

// loadInput parses a workflow input from a JSON file. Unknown fields are
// rejected so a typo in an optional field does not silently drop data.
func loadInput(path string) (provision.Input, error) {
	f, err := os.Open(path)
	if err != nil {
		return provision.Input{}, err
	}
	defer f.Close()

	var input provision.Input
	dec := json.NewDecoder(f)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&input); err != nil {
		return provision.Input{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return input, nil
}
