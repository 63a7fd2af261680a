package contracts

// ExitVaultABI is the interface description of the deployed ExitVault
// contract. Deposits go through the payable invest method, per-address
// balances are exposed both as the getBalance accessor and the public
// balances mapping, and withdrawals take the amount in wei.
const ExitVaultABI = `[
	{"type":"function","name":"invest","stateMutability":"payable","inputs":[],"outputs":[]},
	{"type":"function","name":"getBalance","stateMutability":"view","inputs":[{"name":"account","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"balances","stateMutability":"view","inputs":[{"name":"","type":"address"}],"outputs":[{"name":"","type":"uint256"}]},
	{"type":"function","name":"withdraw","stateMutability":"nonpayable","inputs":[{"name":"amount","type":"uint256"}],"outputs":[]},
	{"type":"event","name":"Invest","anonymous":false,"inputs":[{"name":"account","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]},
	{"type":"event","name":"Withdraw","anonymous":false,"inputs":[{"name":"account","type":"address","indexed":true},{"name":"amount","type":"uint256","indexed":false}]}
]`
