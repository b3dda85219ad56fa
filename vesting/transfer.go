package vesting

import (
	"encoding/json"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Transferer moves funds out of the vesting treasury. A failed transfer
// aborts the whole mutation it is part of.
type Transferer interface {
	Transfer(to AccountAddress, amount uint64) error
}

// PayoutClient sends transfers through an external wallet daemon.
type PayoutClient struct {
	Endpoint string
	ApiKey   string
	Timeout  time.Duration
}

func (p *PayoutClient) Transfer(to AccountAddress, amount uint64) error {
	if len(p.Endpoint) == 0 {
		return VestingError{Code: 500, Message: "payout endpoint is not specified"}
	}

	baseUrl, err := url.Parse(p.Endpoint)
	if err != nil {
		return VestingError{Code: 500, Message: err.Error()}
	}
	baseUrl.Path += "/sendTransfer"
	params := url.Values{}
	if len(p.ApiKey) > 0 {
		params.Add("api_key", p.ApiKey)
	}
	baseUrl.RawQuery = params.Encode()

	agent := fiber.Post(baseUrl.String())
	agent.JSON(fiber.Map{"destination": string(to), "amount": fmt.Sprintf("%d", amount)})
	agent.Timeout(p.Timeout)
	_, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return VestingError{Code: 500, Message: errs[0].Error()}
	}

	var jsn map[string]interface{}
	if err = json.Unmarshal(body, &jsn); err != nil {
		return VestingError{Code: 500, Message: err.Error()}
	}
	if jsn["ok"] != true {
		return VestingError{Code: 500, Message: fmt.Sprintf("transfer failed: %v", jsn["error"])}
	}
	return nil
}

// LoggingTransferer only logs outgoing transfers. Used when no payout
// endpoint is configured (dry-run mode).
type LoggingTransferer struct{}

func (t *LoggingTransferer) Transfer(to AccountAddress, amount uint64) error {
	log.Printf("dry-run transfer of %d to %s", amount, to)
	return nil
}
