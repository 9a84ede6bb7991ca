package chain

// GPSPaymentABI is the interface of the deployed location-conditioned payment
// contract. Coordinates are microdegrees (degrees * 1e6); radius is metres.
const GPSPaymentABI = `[
	{"type":"function","name":"createPayment","stateMutability":"payable",
	 "inputs":[{"name":"worker","type":"address"},{"name":"latitude","type":"int256"},{"name":"longitude","type":"int256"},{"name":"radius","type":"uint256"}],
	 "outputs":[{"name":"paymentId","type":"uint256"}]},
	{"type":"function","name":"releasePayment","stateMutability":"nonpayable",
	 "inputs":[{"name":"paymentId","type":"uint256"}],"outputs":[]},
	{"type":"function","name":"getPayment","stateMutability":"view",
	 "inputs":[{"name":"paymentId","type":"uint256"}],
	 "outputs":[{"name":"employer","type":"address"},{"name":"worker","type":"address"},{"name":"amount","type":"uint256"},
	            {"name":"latitude","type":"int256"},{"name":"longitude","type":"int256"},{"name":"radius","type":"uint256"},{"name":"released","type":"bool"}]},
	{"type":"function","name":"paymentCount","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"oracle","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"event","name":"PaymentCreated","anonymous":false,
	 "inputs":[{"name":"paymentId","type":"uint256","indexed":true},{"name":"employer","type":"address","indexed":true},{"name":"worker","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"PaymentReleased","anonymous":false,
	 "inputs":[{"name":"paymentId","type":"uint256","indexed":true},{"name":"worker","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]}
]`

// GPSOracleABI is the interface of the deployed device-location oracle.
const GPSOracleABI = `[
	{"type":"function","name":"updateLocation","stateMutability":"nonpayable",
	 "inputs":[{"name":"device","type":"address"},{"name":"latitude","type":"int256"},{"name":"longitude","type":"int256"}],"outputs":[]},
	{"type":"function","name":"getLocation","stateMutability":"view",
	 "inputs":[{"name":"device","type":"address"}],
	 "outputs":[{"name":"latitude","type":"int256"},{"name":"longitude","type":"int256"},{"name":"updatedAt","type":"uint256"}]},
	{"type":"function","name":"owner","stateMutability":"view","inputs":[],"outputs":[{"name":"","type":"address"}]},
	{"type":"event","name":"LocationUpdated","anonymous":false,
	 "inputs":[{"name":"device","type":"address","indexed":true},{"name":"latitude","type":"int256","indexed":false},{"name":"longitude","type":"int256","indexed":false},{"name":"updatedAt","type":"uint256","indexed":false}]}
]`
