// Command client is a smoke-test client for a running gatekit server: it
// logs in, extracts the issued token, and calls the protected index route.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/gatekit/gatekit/internal/logger"
	"github.com/gatekit/gatekit/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	baseURL := flag.String("s", "http://localhost:3000", "gatekit server base URL")
	name := flag.String("n", "smoke-tester", "user name to log in with")
	uid := flag.Uint64("u", 1, "user id to log in with")
	flag.Parse()

	log := logger.NewLogger("gatekit-client")

	cli := resty.New().
		SetBaseURL(strings.TrimRight(*baseURL, "/")).
		SetTimeout(15 * time.Second)

	user := models.User{UID: *uid, Name: *name}

	loginResp, err := cli.R().
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/login")
	if err != nil {
		log.Fatal().Err(err).Msg("login request failed")
	}

	var loginEnv models.Envelope
	if err = json.Unmarshal(loginResp.Body(), &loginEnv); err != nil {
		log.Fatal().Err(err).Msg("login response is not an envelope")
	}

	fmt.Printf("POST /login -> %d %s: %s\n", loginResp.StatusCode(), loginEnv.Msg, loginResp.Body())

	token, ok := loginEnv.Data.(string)
	if !ok || token == "" {
		log.Fatal().Int("code", loginEnv.Code).Msg("no token in login response")
	}

	indexResp, err := cli.R().
		SetHeader("Authorization", "Bearer "+token).
		Get("/index")
	if err != nil {
		log.Fatal().Err(err).Msg("index request failed")
	}

	fmt.Printf("GET /index -> %d: %s\n", indexResp.StatusCode(), indexResp.Body())
	fmt.Printf("trace id: %s\n", indexResp.Header().Get("X-Trace-ID"))
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
