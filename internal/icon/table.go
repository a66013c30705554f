package icon

// curated is the built-in table in lookup order.
var curated = []Entry{
	// categories
	{"影视", "🎬"},
	{"游戏实况", "🎮"},
	{"游戏综合", "🎯"},
	{"新游试玩", "🆕"},
	{"有益", "📚"},
	{"悠闲轻松", "😌"},
	{"hehe", "😏"},
	{"scp/怪谈", "👻"},
	{"专注音乐/视频当背景版", "🎵"},
	{"体育赛事", "⚽"},
	{"信息源", "📰"},
	{"漫画/小说", "📖"},
	{"音乐区", "🎤"},

	// subcategories
	{"完整", "🎯"},
	{"画质", "✨"},
	{"杂", "🔀"},
	{"格斗", "👊"},
	{"第三人称射击", "🔫"},
	{"完整合集", "📦"},
	{"单独合集", "📦"},
	{"恐怖猎奇", "😱"},
	{"测评", "📊"},
	{"电子榨菜", "🍜"},
	{"抽象", "🎨"},
	{"欢乐", "😄"},
	{"微恐", "👻"},
	{"推理", "🔍"},
	{"文艺", "🎭"},
	{"时政点评", "🗳️"},
	{"访谈", "🎤"},
	{"科普", "🔬"},
	{"工科", "⚙️"},
	{"理科", "🧮"},
	{"文科", "📜"},
	{"英语", "🇬🇧"},
	{"AI", "🤖"},
	{"摄影", "📷"},
	{"厨艺", "👨‍🍳"},
	{"国标", "💃"},
	{"权术/勾心斗角", "🎭"},
	{"社会学", "👥"},
	{"心理学", "🧠"},
	{"历史", "📜"},
	{"哲学", "🤔"},
	{"码农", "💻"},
	{"学习观", "📖"},
	{"数学", "🔢"},
	{"机械", "🔧"},
	{"教学", "👨‍🏫"},
	{"mod", "🔧"},
	{"整活", "🎪"},
	{"僵毁", "🧟"},
	{"MC", "⛏️"},
	{"以撒", "💀"},
	{"泰拉瑞亚", "🗺️"},
	{"肉鸽", "🎲"},
	{"电影", "🎞️"},
	{"短视频", "📹"},
	{"定格动画", "🎭"},
	{"美漫", "🦸"},
	{"san", "😵"},
	{"自制", "🎨"},
	{"战锤", "⚔️"},
	{"解说", "🗣️"},
	{"原片+解析", "🎬"},
	{"原片", "🎬"},
	{"长剧情游戏", "🎮"},
	{"感人", "😢"},
	{"动态", "📱"},
	{"互动小说", "📱"},
	{"美女", "💃"},
	{"攻略", "🗺️"},
	{"技巧", "💡"},
	{"综艺", "📺"},
	{"米米米", "🎵"},
	{"鬼畜", "😈"},
	{"足球", "⚽"},
	{"射击", "🎯"},
	{"挂机", "⏸️"},
	{"渲染", "🎨"},
	{"训练", "🏋️"},
	{"评测", "📊"},
	{"吃播", "🍽️"},
	{"韩语", "🇰🇷"},
	{"火影手游", "🥷"},
	{"单口", "🎤"},

	// subclasses
	{"mk", "🥊"},
	{"3a大作", "🎮"},
	{"生存类", "🏕️"},
	{"机器鸡", "🐔"},
	{"mc", "⛏️"},
	{"声控", "🎙️"},
	{"课程", "📚"},
	{"乐高大赛", "🧱"},
	{"对战类", "⚔️"},
	{"电子斗蛐蛐", "🦗"},
	{"躲猫猫", "🙈"},
	{"火影手游/究极风暴", "🥷"},
	{"战锤 / 其他游戏动画", "⚔️"},
}
