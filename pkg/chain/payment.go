package chain

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Payment is an escrowed amount released once the worker's oracle location
// falls inside the radius around the job coordinates.
type Payment struct {
	ID           string  `json:"id"`
	Employer     string  `json:"employer"`
	Worker       string  `json:"worker"`
	AmountWei    string  `json:"amount_wei"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters uint64  `json:"radius_meters"`
	Released     bool    `json:"released"`
}

// CreatePaymentInput funds a new payment; AmountWei is sent as msg.value.
type CreatePaymentInput struct {
	Worker       string
	Latitude     float64
	Longitude    float64
	RadiusMeters uint64
	AmountWei    *big.Int
}

func (c *Client) GetPayment(ctx context.Context, id *big.Int) (*Payment, error) {
	out, err := c.call(ctx, c.payment, "getPayment", id)
	if err != nil {
		return nil, err
	}
	if len(out) != 7 {
		return nil, fmt.Errorf("chain: getPayment: unexpected %d outputs", len(out))
	}

	employer, _ := out[0].(common.Address)
	worker, _ := out[1].(common.Address)
	amount, _ := out[2].(*big.Int)
	lat, _ := out[3].(*big.Int)
	lon, _ := out[4].(*big.Int)
	radius, _ := out[5].(*big.Int)
	released, _ := out[6].(bool)

	p := &Payment{
		ID:        id.String(),
		Employer:  employer.Hex(),
		Worker:    worker.Hex(),
		AmountWei: "0",
		Latitude:  FromMicrodegrees(lat),
		Longitude: FromMicrodegrees(lon),
		Released:  released,
	}
	if amount != nil {
		p.AmountWei = amount.String()
	}
	if radius != nil {
		p.RadiusMeters = radius.Uint64()
	}
	return p, nil
}

func (c *Client) PaymentCount(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, c.payment, "paymentCount")
	if err != nil {
		return nil, err
	}
	n, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("chain: paymentCount: unexpected output type %T", out[0])
	}
	return n, nil
}

// PaymentOracle returns the oracle address the payment contract trusts.
func (c *Client) PaymentOracle(ctx context.Context) (string, error) {
	out, err := c.call(ctx, c.payment, "oracle")
	if err != nil {
		return "", err
	}
	addr, ok := out[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("chain: oracle: unexpected output type %T", out[0])
	}
	return addr.Hex(), nil
}

func (c *Client) CreatePayment(ctx context.Context, in CreatePaymentInput) (*TxResult, error) {
	worker, err := ParseAddress(in.Worker)
	if err != nil {
		return nil, err
	}
	if in.AmountWei == nil || in.AmountWei.Sign() <= 0 {
		return nil, errors.New("chain: payment amount must be positive")
	}
	return c.transact(ctx, c.payment, ContractGPSPayment, in.AmountWei, "createPayment",
		worker, ToMicrodegrees(in.Latitude), ToMicrodegrees(in.Longitude), new(big.Int).SetUint64(in.RadiusMeters))
}

func (c *Client) ReleasePayment(ctx context.Context, id *big.Int) (*TxResult, error) {
	return c.transact(ctx, c.payment, ContractGPSPayment, nil, "releasePayment", id)
}
