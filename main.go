package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/swagger"
	_ "github.com/kdimentionaltree/ton-vesting-go/docs"
	"github.com/kdimentionaltree/ton-vesting-go/vesting"
)

type Settings struct {
	PgDsn        string
	RedisDsn     string
	MaxConns     int
	MinConns     int
	Bind         string
	InstanceName string
	Prefork      bool
	Debug        bool
	Owner        string
	FeeRecipient string
	SetupFeeBp   uint64
	Payout       string
	PayoutApiKey string
	Request      vesting.RequestSettings
}

var ledger *vesting.Ledger
var pool *vesting.DbClient
var settings Settings

//	@title			TON Vesting Service
//	@version		1.0.0
//	@description	Token vesting ledger with linear release curves, cliffs, setup fees and owner-gated revocation.
//  @query.collection.format multi

//	@securitydefinitions.apikey CallerAddressHeader
//	@in		header
//	@name	X-Caller-Address

// @summary		Get Vesting Info
// @description	Get the ledger configuration: owner, fee recipient, setup fee and treasury balance.
// @id	api_v1_get_info
// @tags	admin
// @Accept       json
// @Produce      json
// @success		200	{object}	vesting.VestingInfo
// @failure		400	{object}	vesting.VestingError
// @router			/api/v1/info [get]
func GetInfo(c *fiber.Ctx) error {
	return c.JSON(ledger.Info())
}

// @summary		Get Vesting Stats
// @description	Get dashboard aggregates: total vested, released and releasable amounts and schedule counts by status.
// @id	api_v1_get_stats
// @tags	dashboard
// @Accept       json
// @Produce      json
// @success		200	{object}	vesting.VestingStats
// @failure		400	{object}	vesting.VestingError
// @router			/api/v1/stats [get]
func GetStats(c *fiber.Ctx) error {
	return c.JSON(ledger.Stats(settings.Request))
}

// @summary Get Schedules
// @description Returns vesting schedules with computed vested and releasable amounts, progress, status and next release date.
// @id api_v1_get_schedules
// @tags schedules
// @Accept       json
// @Produce      json
// @success		200	{object}	vesting.SchedulesResponse
// @failure		400	{object}	vesting.VestingError
// @param beneficiary query []string false "Beneficiary addresses. Can be sent in raw or user-friendly form." collectionFormat(multi)
// @param status query []string false "Filter by schedule status." Enums(pending, active, completed, revoked) collectionFormat(multi)
// @param limit query int32 false "Limit number of rows. Use with *offset* to batch read." minimum(1) maximum(1000) default(100)
// @param offset query int32 false "Skip first N rows. Use with *limit* to batch read." minimum(0) default(0)
// @router			/api/v1/schedules [get]
func GetSchedules(c *fiber.Ctx) error {
	sched_req := vesting.ScheduleRequest{}
	lim_req := vesting.LimitRequest{}

	if err := c.QueryParser(&sched_req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}
	if err := c.QueryParser(&lim_req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}

	resp, err := ledger.Rows(sched_req, lim_req, settings.Request)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// @summary Get Beneficiaries
// @description Returns beneficiaries in enumeration order. The order is append-only and index-stable.
// @id api_v1_get_beneficiaries
// @tags schedules
// @Accept       json
// @Produce      json
// @success		200	{object}	vesting.BeneficiariesResponse
// @failure		400	{object}	vesting.VestingError
// @param limit query int32 false "Limit number of rows." minimum(1) maximum(1000) default(100)
// @param offset query int32 false "Skip first N rows." minimum(0) default(0)
// @router			/api/v1/beneficiaries [get]
func GetBeneficiaries(c *fiber.Ctx) error {
	lim_req := vesting.LimitRequest{}
	if err := c.QueryParser(&lim_req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}

	resp, err := ledger.Beneficiaries(lim_req, settings.Request)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// @summary Get Beneficiary
// @description Returns the beneficiary at the given enumeration index.
// @id api_v1_get_beneficiary
// @tags schedules
// @Accept       json
// @Produce      json
// @success		200	{object}	vesting.BeneficiaryResponse
// @failure		404	{object}	vesting.VestingError
// @param index query int32 true "Beneficiary index." minimum(0)
// @router			/api/v1/beneficiary [get]
func GetBeneficiary(c *fiber.Ctx) error {
	idx_req := vesting.BeneficiaryAtRequest{}
	if err := c.QueryParser(&idx_req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}
	if idx_req.Index == nil {
		return vesting.VestingError{Code: 422, Message: "index is required"}
	}

	addr, err := ledger.BeneficiaryAt(*idx_req.Index)
	if err != nil {
		return err
	}
	return c.JSON(vesting.BeneficiaryResponse{Beneficiary: addr, Index: *idx_req.Index})
}

// @summary Get Events
// @description Returns the activity feed: schedule creations, releases and revocations.
// @id api_v1_get_events
// @tags dashboard
// @Accept       json
// @Produce      json
// @success		200	{object}	vesting.EventsResponse
// @failure		400	{object}	vesting.VestingError
// @param beneficiary query []string false "Beneficiary addresses." collectionFormat(multi)
// @param event_type query []string false "Event types." Enums(schedule_created, tokens_released, schedule_revoked) collectionFormat(multi)
// @param start_utime query int32 false "Query events created **after** given timestamp." minimum(0)
// @param end_utime query int32 false "Query events created **before** given timestamp." minimum(0)
// @param limit query int32 false "Limit number of rows." minimum(1) maximum(1000) default(100)
// @param offset query int32 false "Skip first N rows." minimum(0) default(0)
// @param sort query string false "Sort events by id." Enums(asc, desc) default(desc)
// @router			/api/v1/events [get]
func GetEvents(c *fiber.Ctx) error {
	if pool == nil {
		return vesting.VestingError{Code: 500, Message: "database is not configured"}
	}
	ev_req := vesting.EventsRequest{}
	lim_req := vesting.LimitRequest{}

	if err := c.QueryParser(&ev_req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}
	if err := c.QueryParser(&lim_req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}

	events, err := pool.QueryEvents(ev_req, lim_req, settings.Request)
	if err != nil {
		return err
	}
	return c.JSON(vesting.EventsResponse{Events: events})
}

// @summary Create Schedule
// @description Creates a vesting schedule for a beneficiary. Owner only. The setup fee is deducted from the gross amount and sent to the fee recipient; the remainder becomes the vesting principal.
// @id api_v1_post_schedule
// @tags mutations
// @Accept json
// @Produce json
// @success 200 {object} vesting.CreateScheduleResponse
// @failure 400 {object} vesting.VestingError
// @param request body vesting.CreateScheduleRequest true "Create schedule request"
// @router /api/v1/schedule [post]
// @security		CallerAddressHeader
func PostCreateSchedule(c *fiber.Ctx) error {
	caller, err := extractCaller(c)
	if err != nil {
		return err
	}

	var req vesting.CreateScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}
	if len(req.Beneficiary) > 0 {
		addr, err := vesting.ParseAccountAddress(string(req.Beneficiary))
		if err != nil {
			return vesting.VestingError{Code: 422, Kind: vesting.ErrInvalidBeneficiary, Message: "failed to parse beneficiary address"}
		}
		req.Beneficiary = addr
	}

	resp, err := ledger.CreateSchedule(caller, req, settings.Request)
	if err != nil {
		return err
	}
	return c.Status(200).JSON(resp)
}

// @summary Release Tokens
// @description Releases the caller's releasable amount to the caller's wallet.
// @id api_v1_post_release
// @tags mutations
// @Accept json
// @Produce json
// @success 200 {object} vesting.ReleaseResponse
// @failure 400 {object} vesting.VestingError
// @router /api/v1/release [post]
// @security		CallerAddressHeader
func PostRelease(c *fiber.Ctx) error {
	caller, err := extractCaller(c)
	if err != nil {
		return err
	}

	resp, err := ledger.Release(caller, settings.Request)
	if err != nil {
		return err
	}
	return c.Status(200).JSON(resp)
}

// @summary Revoke Schedule
// @description Revokes a revocable schedule. Owner only. Vesting stops accruing; the already-vested amount remains releasable.
// @id api_v1_post_revoke
// @tags mutations
// @Accept json
// @Produce json
// @success 200 {object} vesting.RevokeResponse
// @failure 400 {object} vesting.VestingError
// @param request body vesting.RevokeScheduleRequest true "Revoke schedule request"
// @router /api/v1/revoke [post]
// @security		CallerAddressHeader
func PostRevoke(c *fiber.Ctx) error {
	caller, err := extractCaller(c)
	if err != nil {
		return err
	}

	var req vesting.RevokeScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}
	if len(req.Beneficiary) == 0 {
		return vesting.VestingError{Code: 422, Kind: vesting.ErrInvalidBeneficiary, Message: "beneficiary is required"}
	}
	addr, err := vesting.ParseAccountAddress(string(req.Beneficiary))
	if err != nil {
		return vesting.VestingError{Code: 422, Kind: vesting.ErrInvalidBeneficiary, Message: "failed to parse beneficiary address"}
	}

	resp, err := ledger.Revoke(caller, addr, settings.Request)
	if err != nil {
		return err
	}
	return c.Status(200).JSON(resp)
}

// @summary Update Setup Fee Percentage
// @description Updates the setup fee in basis points (max 1000). Owner only. Affects subsequent creations only.
// @id api_v1_post_fee_percentage
// @tags admin
// @Accept json
// @Produce json
// @success 200 {object} vesting.UpdateFeePercentageResponse
// @failure 400 {object} vesting.VestingError
// @param request body vesting.UpdateFeePercentageRequest true "Update fee percentage request"
// @router /api/v1/admin/feePercentage [post]
// @security		CallerAddressHeader
func PostUpdateFeePercentage(c *fiber.Ctx) error {
	caller, err := extractCaller(c)
	if err != nil {
		return err
	}

	var req vesting.UpdateFeePercentageRequest
	if err := c.BodyParser(&req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}

	resp, err := ledger.UpdateSetupFeePercentage(caller, req.FeePercentage, settings.Request)
	if err != nil {
		return err
	}
	return c.Status(200).JSON(resp)
}

// @summary Update Fee Recipient
// @description Updates the setup fee recipient. Owner only.
// @id api_v1_post_fee_recipient
// @tags admin
// @Accept json
// @Produce json
// @success 200 {object} vesting.UpdateFeeRecipientResponse
// @failure 400 {object} vesting.VestingError
// @param request body vesting.UpdateFeeRecipientRequest true "Update fee recipient request"
// @router /api/v1/admin/feeRecipient [post]
// @security		CallerAddressHeader
func PostUpdateFeeRecipient(c *fiber.Ctx) error {
	caller, err := extractCaller(c)
	if err != nil {
		return err
	}

	var req vesting.UpdateFeeRecipientRequest
	if err := c.BodyParser(&req); err != nil {
		return vesting.VestingError{Code: 422, Message: err.Error()}
	}
	if len(req.FeeRecipient) == 0 {
		return vesting.VestingError{Code: 422, Kind: vesting.ErrInvalidAddress, Message: "fee recipient is required"}
	}
	addr, err := vesting.ParseAccountAddress(string(req.FeeRecipient))
	if err != nil {
		return vesting.VestingError{Code: 422, Kind: vesting.ErrInvalidAddress, Message: "failed to parse fee recipient address"}
	}

	resp, err := ledger.UpdateFeeRecipient(caller, addr, settings.Request)
	if err != nil {
		return err
	}
	return c.Status(200).JSON(resp)
}

func HealthCheck(c *fiber.Ctx) error {
	return c.Status(200).SendString("OK")
}

func ExtractParam(ctx *fiber.Ctx, header string, query string) (string, bool) {
	result := ``
	found := false
	if val := ctx.GetReqHeaders()[header]; len(val) > 0 {
		result = val[0]
		found = true
	}
	if val, ok := ctx.Queries()[query]; len(query) > 0 && ok {
		result = val
		found = true
	}
	return result, found
}

// extractCaller binds the acting address from the transport layer. The
// surrounding gateway authenticates the wallet and forwards its address.
func extractCaller(ctx *fiber.Ctx) (vesting.AccountAddress, error) {
	raw, found := ExtractParam(ctx, "X-Caller-Address", "caller")
	if !found {
		return "", vesting.VestingError{Code: 401, Message: "caller address is required"}
	}
	addr, err := vesting.ParseAccountAddress(raw)
	if err != nil {
		return "", vesting.VestingError{Code: 422, Kind: vesting.ErrInvalidAddress, Message: "failed to parse caller address"}
	}
	return addr, nil
}

func ErrorHandlerFunc(ctx *fiber.Ctx, err error) error {
	caller, _ := ExtractParam(ctx, "X-Caller-Address", "caller")
	ip := ctx.IP()
	if ips := ctx.IPs(); len(ips) > 0 {
		ip = ips[0]
	}

	switch e := err.(type) {
	case vesting.VestingError:
		if e.Code != 404 {
			log.Printf("Code: %d Kind: %s Path: %s IP: %s Caller: %s Queries: %v Body: %s Error: %s",
				e.Code, e.Kind, ctx.Path(), ip, caller, ctx.Queries(), string(ctx.Body()), err.Error())
		}
		return ctx.Status(e.Code).JSON(e)
	default:
		log.Printf("Path: %s IP: %s Caller: %s Queries: %v Body: %s Error: %s", ctx.Path(), ip, caller, ctx.Queries(), string(ctx.Body()), err.Error())
		resp := map[string]string{}
		resp["error"] = fmt.Sprintf("internal server error: %s", err.Error())
		return ctx.Status(fiber.StatusInternalServerError).JSON(resp)
	}
}

func main() {
	var timeout_ms int
	var cache_ttl_ms int

	flag.StringVar(&settings.PgDsn, "pg", "", "PostgreSQL connection string (empty for in-memory mode)")
	flag.StringVar(&settings.RedisDsn, "redis", "", "Redis connection string for the schedule snapshot cache")
	flag.IntVar(&settings.MaxConns, "maxconns", 100, "PostgreSQL max connections")
	flag.IntVar(&settings.MinConns, "minconns", 0, "PostgreSQL min connections")
	flag.StringVar(&settings.Bind, "bind", ":8000", "Bind address")
	flag.StringVar(&settings.InstanceName, "name", "Go", "Instance name to show in Swagger UI")
	flag.BoolVar(&settings.Prefork, "prefork", false, "Prefork workers")
	flag.BoolVar(&settings.Debug, "debug", false, "Run service in debug mode")
	flag.StringVar(&settings.Owner, "owner", "", "Owner address (required)")
	flag.StringVar(&settings.FeeRecipient, "fee-recipient", "", "Setup fee recipient address (required)")
	flag.Uint64Var(&settings.SetupFeeBp, "fee", vesting.DefaultSetupFeeBp, "Setup fee in basis points")
	flag.StringVar(&settings.Payout, "payout", "", "Payout wallet daemon endpoint")
	flag.StringVar(&settings.PayoutApiKey, "payout-apikey", "", "API key for the payout endpoint")
	flag.IntVar(&timeout_ms, "query-timeout", 3000, "Query timeout in milliseconds")
	flag.IntVar(&cache_ttl_ms, "cache-ttl", 5000, "Snapshot cache TTL in milliseconds")
	flag.IntVar(&settings.Request.DefaultLimit, "default-limit", 100, "Default value for limit")
	flag.IntVar(&settings.Request.MaxLimit, "max-limit", 1000, "Maximum value for limit")
	settings.Request.Timeout = time.Duration(timeout_ms) * time.Millisecond
	flag.Parse()

	owner, err := vesting.ParseAccountAddress(settings.Owner)
	if err != nil {
		log.Printf("Failed to parse owner address '%s': %v", settings.Owner, err)
		os.Exit(62)
	}
	feeRecipient, err := vesting.ParseAccountAddress(settings.FeeRecipient)
	if err != nil {
		log.Printf("Failed to parse fee recipient address '%s': %v", settings.FeeRecipient, err)
		os.Exit(62)
	}

	if len(settings.PgDsn) > 0 {
		pool, err = vesting.NewDbClient(settings.PgDsn, settings.MaxConns, settings.MinConns)
		if err != nil {
			log.Printf("Failed to connect to database: %v", err)
			os.Exit(63)
		}
	} else {
		log.Printf("No PostgreSQL DSN specified, running in-memory")
	}

	var cache *vesting.SnapshotCache
	if len(settings.RedisDsn) > 0 {
		cache, err = vesting.NewSnapshotCache(settings.RedisDsn, time.Duration(cache_ttl_ms)*time.Millisecond)
		if err != nil {
			log.Printf("Failed to connect to redis: %v", err)
			os.Exit(64)
		}
	}

	var transfer vesting.Transferer
	if len(settings.Payout) > 0 {
		transfer = &vesting.PayoutClient{
			Endpoint: settings.Payout,
			ApiKey:   settings.PayoutApiKey,
			Timeout:  settings.Request.Timeout,
		}
	} else {
		log.Printf("No payout endpoint specified, transfers run dry")
	}

	ledger, err = vesting.NewLedger(vesting.LedgerConfig{
		Owner:              owner,
		FeeRecipient:       feeRecipient,
		SetupFeePercentage: settings.SetupFeeBp,
		Store:              pool,
		Cache:              cache,
		Transfer:           transfer,
	})
	if err != nil {
		log.Printf("Failed to initialize ledger: %v", err)
		os.Exit(65)
	}

	// web server
	config := fiber.Config{
		AppName:      "TON Vesting Service",
		Concurrency:  256 * 1024,
		Prefork:      settings.Prefork,
		ErrorHandler: ErrorHandlerFunc,
	}
	app := fiber.New(config)

	// converters
	fiber.SetParserDecoder(fiber.ParserConfig{
		IgnoreUnknownKeys: true,
		ParserType: []fiber.ParserType{
			{Customtype: vesting.AccountAddress(""), Converter: vesting.AccountAddressConverter},
			{Customtype: vesting.ScheduleStatus(""), Converter: vesting.ScheduleStatusConverter},
			{Customtype: vesting.UtimeType(0), Converter: vesting.UtimeTypeConverter},
		},
		ZeroEmpty: true,
	})

	app.Use("/api/v1/", func(c *fiber.Ctx) error {
		c.Accepts("application/json")
		start := time.Now()
		err := c.Next()
		stop := time.Now()
		c.Append("Server-timing", fmt.Sprintf("app;dur=%v", stop.Sub(start).String()))
		return err
	})
	if settings.Debug {
		app.Use(pprof.New())
	}

	// healthcheck
	app.Get("/healthcheck", HealthCheck)

	// reads
	app.Get("/api/v1/info", GetInfo)
	app.Get("/api/v1/stats", GetStats)
	app.Get("/api/v1/schedules", GetSchedules)
	app.Get("/api/v1/beneficiaries", GetBeneficiaries)
	app.Get("/api/v1/beneficiary", GetBeneficiary)
	app.Get("/api/v1/events", GetEvents)

	// mutations
	app.Post("/api/v1/schedule", PostCreateSchedule)
	app.Post("/api/v1/release", PostRelease)
	app.Post("/api/v1/revoke", PostRevoke)

	// admin
	app.Post("/api/v1/admin/feePercentage", PostUpdateFeePercentage)
	app.Post("/api/v1/admin/feeRecipient", PostUpdateFeeRecipient)

	// swagger
	var swagger_config = swagger.Config{
		Title:           "TON Vesting (" + settings.InstanceName + ") - Swagger UI",
		Layout:          "BaseLayout",
		DeepLinking:     true,
		TryItOutEnabled: true,
	}
	app.Get("/api/v1/*", swagger.New(swagger_config))
	err = app.Listen(settings.Bind)
	log.Fatal(err)
}
