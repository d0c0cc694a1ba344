package repoargs

type RepositoryName string

const (
	UserRepoName    RepositoryName = "user"
	ServiceRepoName RepositoryName = "service"
	TopupRepoName   RepositoryName = "topup"
	OrderRepoName   RepositoryName = "order"
	LedgerRepoName  RepositoryName = "ledger"
)
