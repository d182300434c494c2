package provider

import (
	"context"
	"net/http"
	"slotfinder/internal/app/config"
	"slotfinder/internal/app/contracts"
	"slotfinder/internal/pkg/constvars"
	"slotfinder/internal/pkg/dto/responses"
	"slotfinder/internal/pkg/exceptions"
	"slotfinder/internal/pkg/utils"
	"time"

	"github.com/goccy/go-json"
)

type scheduleProviderClient struct {
	BaseUrl string
	client  *http.Client
}

func NewScheduleProviderClient(internalConfig *config.InternalConfig) contracts.ScheduleProviderClient {
	return &scheduleProviderClient{
		BaseUrl: internalConfig.Provider.BaseUrl,
		client: &http.Client{
			Timeout: time.Duration(internalConfig.Provider.TimeoutInSeconds) * time.Second,
		},
	}
}

func (c *scheduleProviderClient) FetchScheduleData(ctx context.Context) (*responses.ScheduleFeed, error) {
	req, err := http.NewRequestWithContext(ctx, constvars.MethodGet, c.BaseUrl, nil)
	if err != nil {
		return nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderAccept, constvars.MIMEApplicationJSON)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != constvars.StatusOK {
		return nil, exceptions.ErrProviderStatusNotOK(resp.StatusCode)
	}

	feed := new(responses.ScheduleFeed)
	err = json.NewDecoder(resp.Body).Decode(feed)
	if err != nil {
		return nil, exceptions.ErrDecodeScheduleFeed(err)
	}

	err = utils.ValidateStruct(feed)
	if err != nil {
		return nil, exceptions.ErrScheduleFeedValidation(err)
	}

	return feed, nil
}
