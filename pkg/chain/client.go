package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

var (
	// ErrNotConfigured means no RPC endpoint is available; nothing is sent.
	ErrNotConfigured = errors.New("chain: no wallet provider configured")
	// ErrReadOnly means calls work but transactions cannot be signed.
	ErrReadOnly = errors.New("chain: no signing key configured")
	// ErrContractNotConfigured means the contract address is missing from config.
	ErrContractNotConfigured = errors.New("chain: contract address not configured")
	// ErrInvalidAddress is returned for malformed account or contract addresses.
	ErrInvalidAddress = errors.New("chain: invalid address")
	// ErrChainIDMismatch means the RPC endpoint serves a different chain than configured.
	ErrChainIDMismatch = errors.New("chain: configured chain id does not match rpc endpoint")
)

const (
	ContractGPSPayment = "gps_payment"
	ContractGPSOracle  = "gps_oracle"
)

// Config selects the RPC endpoint, signer and deployed contract addresses.
type Config struct {
	RPCURL         string
	ChainID        int64
	PrivateKeyHex  string
	PaymentAddress string
	OracleAddress  string
}

// Client wraps the two deployed contracts behind typed methods.
type Client struct {
	eth     *ethclient.Client
	chainID *big.Int
	key     *ecdsa.PrivateKey
	from    common.Address

	paymentAddr common.Address
	oracleAddr  common.Address
	payment     *bind.BoundContract
	oracle      *bind.BoundContract
}

// Dial connects to the RPC endpoint and binds the configured contracts.
func Dial(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, ErrNotConfigured
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("chain: dial %s: %w", cfg.RPCURL, err)
	}

	// Signatures commit to the chain id, so a mismatch would make every write fail remotely.
	remote, err := eth.ChainID(ctx)
	if err != nil {
		eth.Close()
		return nil, fmt.Errorf("chain: chain id: %w", err)
	}
	switch {
	case cfg.ChainID == 0:
		cfg.ChainID = remote.Int64()
	case remote.Cmp(big.NewInt(cfg.ChainID)) != 0:
		eth.Close()
		return nil, fmt.Errorf("%w: configured %d, endpoint %s", ErrChainIDMismatch, cfg.ChainID, remote)
	}

	c, err := newClient(eth, eth, cfg)
	if err != nil {
		eth.Close()
		return nil, err
	}
	c.eth = eth
	return c, nil
}

// NewReadOnly binds the contracts against caller without a signer.
func NewReadOnly(caller bind.ContractCaller, paymentAddress, oracleAddress string) (*Client, error) {
	return newClient(caller, nil, Config{PaymentAddress: paymentAddress, OracleAddress: oracleAddress})
}

func newClient(caller bind.ContractCaller, transactor bind.ContractTransactor, cfg Config) (*Client, error) {
	c := &Client{chainID: big.NewInt(cfg.ChainID)}

	if cfg.PrivateKeyHex != "" {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(cfg.PrivateKeyHex, "0x"))
		if err != nil {
			return nil, fmt.Errorf("chain: invalid private key: %w", err)
		}
		c.key = key
		c.from = crypto.PubkeyToAddress(key.PublicKey)
	}

	if cfg.PaymentAddress != "" {
		addr, err := ParseAddress(cfg.PaymentAddress)
		if err != nil {
			return nil, fmt.Errorf("gps payment contract: %w", err)
		}
		parsed, err := abi.JSON(strings.NewReader(GPSPaymentABI))
		if err != nil {
			return nil, err
		}
		c.paymentAddr = addr
		c.payment = bind.NewBoundContract(addr, parsed, caller, transactor, nil)
	}

	if cfg.OracleAddress != "" {
		addr, err := ParseAddress(cfg.OracleAddress)
		if err != nil {
			return nil, fmt.Errorf("gps oracle contract: %w", err)
		}
		parsed, err := abi.JSON(strings.NewReader(GPSOracleABI))
		if err != nil {
			return nil, err
		}
		c.oracleAddr = addr
		c.oracle = bind.NewBoundContract(addr, parsed, caller, transactor, nil)
	}

	return c, nil
}

// Close releases the RPC connection.
func (c *Client) Close() {
	if c.eth != nil {
		c.eth.Close()
	}
}

// Writable reports whether a signing key is loaded.
func (c *Client) Writable() bool {
	return c.key != nil && c.eth != nil
}

// Status summarises the connection for the status endpoint.
type Status struct {
	Connected       bool   `json:"connected"`
	Writable        bool   `json:"writable"`
	ChainID         string `json:"chain_id,omitempty"`
	BlockNumber     uint64 `json:"block_number,omitempty"`
	Sender          string `json:"sender,omitempty"`
	PaymentContract string `json:"payment_contract,omitempty"`
	OracleContract  string `json:"oracle_contract,omitempty"`
	PaymentCount    string `json:"payment_count,omitempty"`
	// PaymentOracle is the oracle the payment contract verifies against.
	PaymentOracle string `json:"payment_oracle,omitempty"`
	OracleOwner   string `json:"oracle_owner,omitempty"`
	// OracleLinked reports whether PaymentOracle equals the configured oracle.
	OracleLinked bool `json:"oracle_linked"`
}

// Status reports the bound contracts and their on-chain summary. Contract
// reads are best effort; an unreachable contract leaves its fields empty.
func (c *Client) Status(ctx context.Context) (*Status, error) {
	st := &Status{Writable: c.Writable()}
	if c.payment != nil {
		st.PaymentContract = c.paymentAddr.Hex()
		if n, err := c.PaymentCount(ctx); err == nil {
			st.PaymentCount = n.String()
		}
		if oracle, err := c.PaymentOracle(ctx); err == nil {
			st.PaymentOracle = oracle
			st.OracleLinked = c.oracle != nil && oracle == c.oracleAddr.Hex()
		}
	}
	if c.oracle != nil {
		st.OracleContract = c.oracleAddr.Hex()
		if owner, err := c.OracleOwner(ctx); err == nil {
			st.OracleOwner = owner
		}
	}
	if c.key != nil {
		st.Sender = c.from.Hex()
	}
	if c.eth == nil {
		return st, nil
	}

	id, err := c.eth.ChainID(ctx)
	if err != nil {
		return st, fmt.Errorf("chain: chain id: %w", err)
	}
	block, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return st, fmt.Errorf("chain: block number: %w", err)
	}
	st.Connected = true
	st.ChainID = id.String()
	st.BlockNumber = block
	return st, nil
}

// TxResult identifies a submitted transaction. Receipts are not awaited.
type TxResult struct {
	Hash     string `json:"tx_hash"`
	Contract string `json:"contract"`
	Method   string `json:"method"`
	From     string `json:"from"`
	Nonce    uint64 `json:"nonce"`
}

func (c *Client) transactOpts(ctx context.Context, value *big.Int) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, ErrReadOnly
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, err
	}
	opts.Context = ctx
	opts.Value = value
	return opts, nil
}

func (c *Client) call(ctx context.Context, contract *bind.BoundContract, method string, params ...interface{}) ([]interface{}, error) {
	if contract == nil {
		return nil, ErrContractNotConfigured
	}
	var out []interface{}
	if err := contract.Call(&bind.CallOpts{Context: ctx}, &out, method, params...); err != nil {
		return nil, fmt.Errorf("chain: %s: %w", method, err)
	}
	return out, nil
}

func (c *Client) transact(ctx context.Context, contract *bind.BoundContract, name string, value *big.Int, method string, params ...interface{}) (*TxResult, error) {
	if contract == nil {
		return nil, ErrContractNotConfigured
	}
	opts, err := c.transactOpts(ctx, value)
	if err != nil {
		return nil, err
	}
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		return nil, fmt.Errorf("chain: %s: %w", method, err)
	}
	return &TxResult{
		Hash:     tx.Hash().Hex(),
		Contract: name,
		Method:   method,
		From:     c.from.Hex(),
		Nonce:    tx.Nonce(),
	}, nil
}

// ParseAddress validates a hex account address.
func ParseAddress(s string) (common.Address, error) {
	if !common.IsHexAddress(s) {
		return common.Address{}, fmt.Errorf("%w: %q", ErrInvalidAddress, s)
	}
	return common.HexToAddress(s), nil
}

// ToMicrodegrees converts decimal degrees to the contract's fixed-point form.
func ToMicrodegrees(deg float64) *big.Int {
	return big.NewInt(int64(math.Round(deg * 1e6)))
}

// FromMicrodegrees converts the contract's fixed-point coordinates back to degrees.
func FromMicrodegrees(v *big.Int) float64 {
	if v == nil {
		return 0
	}
	return float64(v.Int64()) / 1e6
}
