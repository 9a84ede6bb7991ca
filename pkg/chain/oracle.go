package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Location is the oracle's last reported position for a device.
type Location struct {
	Device    string    `json:"device"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updated_at"`
	Known     bool      `json:"known"`
}

// GetLocation reads the oracle's position for device. Devices never reported
// come back with Known=false and zero coordinates.
func (c *Client) GetLocation(ctx context.Context, device string) (*Location, error) {
	addr, err := ParseAddress(device)
	if err != nil {
		return nil, err
	}

	out, err := c.call(ctx, c.oracle, "getLocation", addr)
	if err != nil {
		return nil, err
	}
	if len(out) != 3 {
		return nil, fmt.Errorf("chain: getLocation: unexpected %d outputs", len(out))
	}

	lat, _ := out[0].(*big.Int)
	lon, _ := out[1].(*big.Int)
	updated, _ := out[2].(*big.Int)

	loc := &Location{
		Device:    addr.Hex(),
		Latitude:  FromMicrodegrees(lat),
		Longitude: FromMicrodegrees(lon),
	}
	if updated != nil && updated.Sign() > 0 {
		loc.Known = true
		loc.UpdatedAt = time.Unix(updated.Int64(), 0).UTC()
	}
	return loc, nil
}

// UpdateLocation reports a device position to the oracle.
func (c *Client) UpdateLocation(ctx context.Context, device string, latitude, longitude float64) (*TxResult, error) {
	addr, err := ParseAddress(device)
	if err != nil {
		return nil, err
	}
	return c.transact(ctx, c.oracle, ContractGPSOracle, nil, "updateLocation",
		addr, ToMicrodegrees(latitude), ToMicrodegrees(longitude))
}

// OracleOwner returns the account allowed to push locations.
func (c *Client) OracleOwner(ctx context.Context) (string, error) {
	out, err := c.call(ctx, c.oracle, "owner")
	if err != nil {
		return "", err
	}
	owner, ok := out[0].(common.Address)
	if !ok {
		return "", fmt.Errorf("chain: owner: unexpected output type %T", out[0])
	}
	return owner.Hex(), nil
}
