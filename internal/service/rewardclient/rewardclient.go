package rewardclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/iurnickita/reviewme/internal/model"
)

// Версия плагина. Передается второй стороне в User-Agent
const Version = "1.0"

const (
	requestTimeout = 20 * time.Second
	redirectLimit  = 5
)

// Итог одной попытки получения кода.
// Message - либо код, либо дословный текст ошибки
type Outcome struct {
	Success bool
	Message string
}

type RewardClient interface {
	QueryDiscount(ctx context.Context, email string, discount model.DiscountConfig) Outcome
}

type rewardClient struct {
	shopURL string
	siteURL string
}

func NewRewardClient(shopURL string, siteURL string) RewardClient {
	return rewardClient{
		shopURL: shopURL,
		siteURL: siteURL,
	}
}

// QueryDiscount выполняет ровно один сетевой обход: без повторов,
// без кеширования. Любой исход терминален для этой попытки
func (client rewardClient) QueryDiscount(ctx context.Context, email string, discount model.DiscountConfig) Outcome {

	setreq := resty.New().
		SetTimeout(requestTimeout).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(redirectLimit)).
		R()
	setreq.Method = http.MethodPost
	setreq.URL = client.shopURL
	setreq.SetContext(ctx)
	setreq.SetQueryParam(model.FieldAction, model.ActionDiscount)
	setreq.SetHeader("User-Agent", fmt.Sprintf("WRM/%s; %s", Version, client.siteURL))
	// оборачиваем поля скидки, чтобы не пересечься с чужими именами
	setreq.SetFormData(map[string]string{
		model.FieldEmail:            email,
		model.FieldDiscountType:     discount.Type,
		model.FieldDiscountAmount:   strconv.Itoa(discount.Amount),
		model.FieldDiscountValidity: strconv.Itoa(discount.Validity),
	})

	setresp, err := setreq.Send()

	// транспортная ошибка: текст как есть
	if err != nil {
		return Outcome{Message: err.Error()}
	}

	// не-2xx: текст статуса как есть
	if !setresp.IsSuccess() {
		return Outcome{Message: setresp.Status()}
	}

	// непонятное тело: обобщенная ошибка
	var result model.IssueResult
	err = json.Unmarshal(setresp.Body(), &result)
	if err != nil {
		return Outcome{Message: "Unknown error"}
	}

	if result.Result != model.IssueResultSuccess {
		return Outcome{Message: result.Message}
	}

	return Outcome{Success: true, Message: strings.TrimSpace(result.Message)}
}
