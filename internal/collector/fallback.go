package collector

// fallbackItems 抓取失败或解析不到任何标题时使用的固定数据，分类为预设值，不再重新分类
var fallbackItems = []NewsItem{
	{Title: "AI is Transforming the World", Category: "Technology", URL: "https://www.bbc.com/news/technology"},
	{Title: "Markets Rally as Inflation Cools", Category: "Business", URL: "https://www.bbc.com/news/business"},
	{Title: "Global Leaders Meet for Summit", Category: "World", URL: "https://www.bbc.com/news/world"},
	{Title: "Major Finals Set to Thrill Fans", Category: "Sports", URL: "https://www.bbc.com/sport"},
	{Title: "discovering the beatiful adventures", Category: "travel", URL: "https://www.bbc.com/travel"},
	{Title: "Exploring the Depths of the Ocean", Category: "Environment", URL: "https://www.bbc.com/news/science-environment"},
	{Title: "Green Energy Adoption Surges", Category: "Environment", URL: "https://www.bbc.com/future/columns/climate-change"},
	{Title: "Universities Roll Out New Programs", Category: "Education", URL: "https://www.bbc.com/news/education"},
	{Title: "Elections Around the Corner", Category: "Politics", URL: "https://www.bbc.com/news/politics"},
	{Title: "New Species Discovered in Amazon", Category: "Science", URL: "https://www.bbc.com/news/science-environment"},
	{Title: "Mental Health Awareness Rises", Category: "Health", URL: "https://www.bbc.com/news/health"},
	{Title: "Blockbuster Movie Breaks Records", Category: "Entertainment", URL: "https://www.bbc.com/news/entertainment_and_arts"},
	{Title: "Cyber Security Threats on the Rise", Category: "Cyber Security", URL: "https://www.bbc.com/news/technology"},
	{Title: "The Rise of Electric Vehicles", Category: "Technology", URL: "https://www.bbc.com/news/technology"},
	{Title: "AI-Powered Healthcare Innovations", Category: "Health", URL: "https://www.bbc.com/news/health"},
	{Title: "Amazing Wildlife Discoveries", Category: "Animals", URL: "https://www.bbc.com/news/science-environment"},
}

// FallbackItems 返回兜底数据的副本
func FallbackItems() []NewsItem {
	out := make([]NewsItem, len(fallbackItems))
	copy(out, fallbackItems)
	return out
}
