package generator

// University is one entry of the fixed organization reference table.
type University struct {
	Name         string
	Country      string
	Abbreviation string
	RankScore    float64
}

// Universities is the fixed set of organizations the sample dataset is built from.
var Universities = []University{
	{Name: "Tsinghua University", Country: "China", Abbreviation: "THU", RankScore: 98.5},
	{Name: "Peking University", Country: "China", Abbreviation: "PKU", RankScore: 97.8},
	{Name: "Fudan University", Country: "China", Abbreviation: "FDU", RankScore: 96.2},
	{Name: "Shanghai Jiao Tong University", Country: "China", Abbreviation: "SJTU", RankScore: 95.8},
	{Name: "Zhejiang University", Country: "China", Abbreviation: "ZJU", RankScore: 95.5},
	{Name: "MIT", Country: "USA", Abbreviation: "MIT", RankScore: 99.5},
	{Name: "Stanford University", Country: "USA", Abbreviation: "Stanford", RankScore: 99.2},
	{Name: "Harvard University", Country: "USA", Abbreviation: "Harvard", RankScore: 99.8},
	{Name: "Oxford University", Country: "UK", Abbreviation: "Oxford", RankScore: 98.9},
	{Name: "Cambridge University", Country: "UK", Abbreviation: "Cambridge", RankScore: 98.7},
}

var chineseSurnames = []string{
	"张", "王", "李", "刘", "陈", "杨", "赵", "黄", "周", "吴",
	"徐", "孙", "胡", "朱", "高", "林", "何", "郭", "马", "罗",
}

var chineseGivenNames = []string{
	"伟", "芳", "娜", "秀英", "敏", "静", "丽", "强", "磊", "军",
	"洋", "勇", "艳", "杰", "华", "明", "刚", "平", "辉", "鹏",
}

var englishFirstNames = []string{
	"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph", "Thomas", "Charles",
	"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan", "Jessica", "Sarah", "Karen",
}

var englishLastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis", "Rodriguez", "Martinez",
	"Wilson", "Anderson", "Taylor", "Thomas", "Hernandez", "Moore", "Martin", "Jackson", "Thompson", "White",
}

var paperTitleTemplates = []string{
	"Advanced Research on %s",
	"Novel Approaches to %s",
	"Deep Learning Applications in %s",
	"Machine Learning Methods for %s",
	"A Comprehensive Study of %s",
	"Recent Advances in %s",
	"Optimization Techniques for %s",
	"Data Mining and %s",
	"Neural Network Architectures for %s",
	"Statistical Analysis of %s",
}

var researchTopics = []string{
	"Knowledge Graph Construction", "Natural Language Processing", "Computer Vision",
	"Reinforcement Learning", "Graph Neural Networks", "Data Mining",
	"Information Retrieval", "Machine Translation", "Sentiment Analysis",
	"Recommendation Systems", "Network Analysis", "Distributed Systems",
	"Cloud Computing", "Cybersecurity", "Blockchain Technology",
	"Quantum Computing", "Bioinformatics", "Computational Biology",
	"Robotics", "Autonomous Vehicles", "IoT Systems", "Edge Computing",
}

var venues = []string{
	"AAAI", "ICML", "NeurIPS", "ICLR", "KDD", "SIGIR", "ACL", "EMNLP",
	"CVPR", "ICCV", "ECCV", "WWW", "SIGMOD", "VLDB", "ICDE", "ICDCS",
	"Nature", "Science", "Cell", "PNAS", "IEEE TPAMI", "JMLR",
}

var publicationYears = []int{2020, 2021, 2022, 2023, 2024}

var doiPublishers = []string{"aaai", "icml", "neurips", "acl", "kdd"}
