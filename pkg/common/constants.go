package common

const (
	// DailyBriefKey is the single key the daily brief is stored under.
	DailyBriefKey = "daily-news"

	// ItemsPerFeed is how many items are taken from the head of each feed.
	ItemsPerFeed = 5

	DefaultGeminiModel     = "gemini-2.0-flash"
	DefaultSummaryLanguage = "Korean"

	StoreDriverRedis    = "redis"
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// DefaultFeedURLs lists the Google News searches for the US and Korean markets, in fetch order.
var DefaultFeedURLs = []string{
	"https://news.google.com/rss/search?q=US+stock+market&hl=en-US&gl=US&ceid=US:en",
	"https://news.google.com/rss/search?q=%EA%B5%AD%EB%82%B4+%EC%A6%9D%EC%8B%9C&hl=ko&gl=KR&ceid=KR:ko",
}
