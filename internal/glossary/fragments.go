package glossary

import (
	"sort"
	"unicode/utf8"
)

// fragment is one row of the fallback dictionary: a Korean word or verb
// form and its rough rendering per language.
type fragment struct {
	ko                             string
	en, vi, zh, uz, km, mn, th, ru string
}

var fragmentTable = []fragment{
	{ko: "안전모", en: "helmet", vi: "mũ bảo hộ", zh: "安全帽", uz: "kaska", km: "មួកសុវត្ថិភាព", mn: "хамгаалалтын малгай", th: "หมวกนิรภัย", ru: "каска"},
	{ko: "안전벨트", en: "safety harness", vi: "dây an toàn", zh: "安全带", uz: "xavfsizlik kamari", km: "ខ្សែក្រវ៉ាត់សុវត្ថិភាព", mn: "аюулгүйн бүс", th: "เข็มขัดนิรภัย", ru: "страховочный пояс"},
	{ko: "안전화", en: "safety shoes", vi: "giày bảo hộ", zh: "安全鞋", uz: "xavfsizlik poyabzali", km: "ស្បែកជើងសុវត្ថិភាព", mn: "хамгаалалтын гутал", th: "รองเท้านิรภัย", ru: "защитная обувь"},
	{ko: "안전", en: "safety", vi: "an toàn", zh: "安全", uz: "xavfsizlik", km: "សុវត្ថិភាព", mn: "аюулгүй байдал", th: "ความปลอดภัย", ru: "безопасность"},
	{ko: "장비", en: "equipment", vi: "thiết bị", zh: "设备", uz: "jihoz", km: "ឧបករណ៍", mn: "тоног төхөөрөмж", th: "อุปกรณ์", ru: "оборудование"},
	{ko: "장갑", en: "gloves", vi: "găng tay", zh: "手套", uz: "qo'lqop", km: "ស្រោមដៃ", mn: "бээлий", th: "ถุงมือ", ru: "перчатки"},
	{ko: "마스크", en: "mask", vi: "khẩu trang", zh: "口罩", uz: "niqob", km: "ម៉ាស", mn: "маск", th: "หน้ากาก", ru: "маска"},
	{ko: "작업", en: "work", vi: "công việc", zh: "作业", uz: "ish", km: "ការងារ", mn: "ажил", th: "งาน", ru: "работа"},
	{ko: "현장", en: "site", vi: "công trường", zh: "现场", uz: "qurilish maydoni", km: "ការដ្ឋាន", mn: "талбай", th: "หน้างาน", ru: "площадка"},
	{ko: "반장", en: "foreman", vi: "tổ trưởng", zh: "班长", uz: "brigadir", km: "មេក្រុម", mn: "ахлагч", th: "หัวหน้างาน", ru: "бригадир"},
	{ko: "확인하세요", en: "check", vi: "hãy kiểm tra", zh: "请确认", uz: "tekshiring", km: "សូមពិនិត្យ", mn: "шалгана уу", th: "กรุณาตรวจสอบ", ru: "проверьте"},
	{ko: "확인", en: "check", vi: "kiểm tra", zh: "确认", uz: "tekshirish", km: "ពិនិត្យ", mn: "шалгах", th: "ตรวจสอบ", ru: "проверка"},
	{ko: "점검하세요", en: "inspect", vi: "hãy kiểm tra", zh: "请检查", uz: "ko'zdan kechiring", km: "សូមត្រួតពិនិត្យ", mn: "үзлэг хийнэ үү", th: "กรุณาตรวจ", ru: "осмотрите"},
	{ko: "점검", en: "inspection", vi: "kiểm tra", zh: "检查", uz: "ko'rik", km: "ការត្រួតពិនិត្យ", mn: "үзлэг", th: "การตรวจ", ru: "осмотр"},
	{ko: "준비하세요", en: "get ready", vi: "hãy chuẩn bị", zh: "请准备", uz: "tayyorlaning", km: "សូមរៀបចំ", mn: "бэлтгэнэ үү", th: "กรุณาเตรียม", ru: "подготовьтесь"},
	{ko: "준비", en: "preparation", vi: "chuẩn bị", zh: "准备", uz: "tayyorlov", km: "ការរៀបចំ", mn: "бэлтгэл", th: "การเตรียม", ru: "подготовка"},
	{ko: "착용하세요", en: "wear", vi: "hãy mang", zh: "请佩戴", uz: "kiying", km: "សូមពាក់", mn: "өмсөнө үү", th: "กรุณาสวม", ru: "наденьте"},
	{ko: "착용하고", en: "wear and", vi: "mang vào rồi", zh: "佩戴后", uz: "kiyib", km: "ពាក់ហើយ", mn: "өмсөөд", th: "สวมแล้ว", ru: "наденьте и"},
	{ko: "착용", en: "wearing", vi: "mang", zh: "佩戴", uz: "kiyish", km: "ពាក់", mn: "өмсөх", th: "สวม", ru: "ношение"},
	{ko: "시작하세요", en: "start", vi: "hãy bắt đầu", zh: "请开始", uz: "boshlang", km: "សូមចាប់ផ្តើម", mn: "эхэлнэ үү", th: "กรุณาเริ่ม", ru: "начинайте"},
	{ko: "시작", en: "start", vi: "bắt đầu", zh: "开始", uz: "boshlash", km: "ចាប់ផ្តើម", mn: "эхлэл", th: "เริ่ม", ru: "начало"},
	{ko: "중지", en: "stop", vi: "dừng", zh: "停止", uz: "to'xtatish", km: "ឈប់", mn: "зогс", th: "หยุด", ru: "стоп"},
	{ko: "멈추세요", en: "stop", vi: "hãy dừng lại", zh: "请停下", uz: "to'xtang", km: "សូមឈប់", mn: "зогсоно уу", th: "กรุณาหยุด", ru: "остановитесь"},
	{ko: "대기하세요", en: "stand by", vi: "hãy chờ", zh: "请待命", uz: "kuting", km: "សូមរង់ចាំ", mn: "хүлээнэ үү", th: "กรุณารอ", ru: "ждите"},
	{ko: "기다리세요", en: "wait", vi: "hãy đợi", zh: "请等一下", uz: "kuting", km: "សូមរង់ចាំ", mn: "хүлээнэ үү", th: "กรุณารอ", ru: "подождите"},
	{ko: "대기", en: "standby", vi: "chờ", zh: "待命", uz: "kutish", km: "រង់ចាំ", mn: "хүлээлт", th: "รอ", ru: "ожидание"},
	{ko: "긴급", en: "emergency", vi: "khẩn cấp", zh: "紧急", uz: "favqulodda", km: "បន្ទាន់", mn: "яаралтай", th: "ฉุกเฉิน", ru: "срочно"},
	{ko: "대피하세요", en: "evacuate", vi: "hãy sơ tán", zh: "请撤离", uz: "evakuatsiya qiling", km: "សូមជម្លៀស", mn: "нүүлгэн шилжинэ үү", th: "กรุณาอพยพ", ru: "эвакуируйтесь"},
	{ko: "대피", en: "evacuation", vi: "sơ tán", zh: "撤离", uz: "evakuatsiya", km: "ការជម្លៀស", mn: "нүүлгэн шилжүүлэлт", th: "การอพยพ", ru: "эвакуация"},
	{ko: "휴식 시간입니다", en: "it is break time", vi: "đến giờ nghỉ", zh: "现在是休息时间", uz: "dam olish vaqti", km: "ដល់ម៉ោងសម្រាក", mn: "амралтын цаг боллоо", th: "ถึงเวลาพัก", ru: "время перерыва"},
	{ko: "휴식", en: "break", vi: "nghỉ ngơi", zh: "休息", uz: "dam olish", km: "សម្រាក", mn: "амралт", th: "พัก", ru: "перерыв"},
	{ko: "시간", en: "time", vi: "thời gian", zh: "时间", uz: "vaqt", km: "ពេលវេលា", mn: "цаг", th: "เวลา", ru: "время"},
	{ko: "위험", en: "danger", vi: "nguy hiểm", zh: "危险", uz: "xavf", km: "គ្រោះថ្នាក់", mn: "аюул", th: "อันตราย", ru: "опасность"},
	{ko: "구역", en: "area", vi: "khu vực", zh: "区域", uz: "hudud", km: "តំបន់", mn: "бүс", th: "พื้นที่", ru: "зона"},
	{ko: "접근 금지", en: "keep out", vi: "cấm lại gần", zh: "禁止靠近", uz: "yaqinlashish taqiqlanadi", km: "ហាមចូលជិត", mn: "ойртохыг хориглоно", th: "ห้ามเข้าใกล้", ru: "не приближаться"},
	{ko: "접근", en: "approach", vi: "tiếp cận", zh: "靠近", uz: "yaqinlashish", km: "ចូលជិត", mn: "ойртох", th: "เข้าใกล้", ru: "подход"},
	{ko: "출입 금지", en: "no entry", vi: "cấm vào", zh: "禁止出入", uz: "kirish taqiqlanadi", km: "ហាមចូល", mn: "нэвтрэхийг хориглоно", th: "ห้ามเข้า", ru: "вход запрещён"},
	{ko: "출입", en: "entry", vi: "ra vào", zh: "出入", uz: "kirish", km: "ចេញចូល", mn: "нэвтрэх", th: "เข้าออก", ru: "вход"},
	{ko: "금지", en: "prohibited", vi: "cấm", zh: "禁止", uz: "taqiqlanadi", km: "ហាមឃាត់", mn: "хориглоно", th: "ห้าม", ru: "запрещено"},
	{ko: "전", en: "before", vi: "trước", zh: "之前", uz: "oldin", km: "មុន", mn: "өмнө", th: "ก่อน", ru: "перед"},
	{ko: "후", en: "after", vi: "sau", zh: "之后", uz: "keyin", km: "ក្រោយ", mn: "дараа", th: "หลัง", ru: "после"},
	{ko: "주의하세요", en: "be careful", vi: "hãy cẩn thận", zh: "请注意", uz: "ehtiyot bo'ling", km: "សូមប្រយ័ត្ន", mn: "болгоомжтой байна уу", th: "โปรดระวัง", ru: "будьте осторожны"},
	{ko: "주의", en: "caution", vi: "chú ý", zh: "注意", uz: "diqqat", km: "ប្រយ័ត្ន", mn: "анхаар", th: "ระวัง", ru: "внимание"},
	{ko: "조심", en: "careful", vi: "cẩn thận", zh: "小心", uz: "ehtiyot", km: "ប្រុងប្រយ័ត្ន", mn: "болгоомж", th: "ระวัง", ru: "осторожно"},
	{ko: "모두", en: "everyone", vi: "mọi người", zh: "大家", uz: "hamma", km: "ទាំងអស់គ្នា", mn: "бүгд", th: "ทุกคน", ru: "все"},
	{ko: "지금", en: "now", vi: "bây giờ", zh: "现在", uz: "hozir", km: "ឥឡូវ", mn: "одоо", th: "ตอนนี้", ru: "сейчас"},
	{ko: "오늘", en: "today", vi: "hôm nay", zh: "今天", uz: "bugun", km: "ថ្ងៃនេះ", mn: "өнөөдөр", th: "วันนี้", ru: "сегодня"},
	{ko: "내일", en: "tomorrow", vi: "ngày mai", zh: "明天", uz: "ertaga", km: "ថ្ងៃស្អែក", mn: "маргааш", th: "พรุ่งนี้", ru: "завтра"},
	{ko: "빨리", en: "quickly", vi: "nhanh lên", zh: "快点", uz: "tez", km: "ឆាប់", mn: "хурдан", th: "เร็ว", ru: "быстро"},
	{ko: "천천히", en: "slowly", vi: "từ từ", zh: "慢慢", uz: "sekin", km: "យឺតៗ", mn: "аажмаар", th: "ช้าๆ", ru: "медленно"},
	{ko: "정리", en: "tidy up", vi: "dọn dẹp", zh: "整理", uz: "tartiblash", km: "រៀបចំ", mn: "цэгцлэх", th: "จัดเก็บ", ru: "наведите порядок"},
	{ko: "청소", en: "cleaning", vi: "vệ sinh", zh: "清扫", uz: "tozalash", km: "សម្អាត", mn: "цэвэрлэгээ", th: "ทำความสะอาด", ru: "уборка"},
	{ko: "이동하세요", en: "move", vi: "hãy di chuyển", zh: "请移动", uz: "o'ting", km: "សូមផ្លាស់ទី", mn: "шилжинэ үү", th: "กรุณาย้าย", ru: "переместитесь"},
	{ko: "이동", en: "move", vi: "di chuyển", zh: "移动", uz: "ko'chish", km: "ផ្លាស់ទី", mn: "шилжих", th: "ย้าย", ru: "перемещение"},
	{ko: "화재", en: "fire", vi: "hỏa hoạn", zh: "火灾", uz: "yong'in", km: "អគ្គិភ័យ", mn: "гал түймэр", th: "ไฟไหม้", ru: "пожар"},
	{ko: "추락", en: "fall", vi: "ngã cao", zh: "坠落", uz: "qulash", km: "ធ្លាក់", mn: "унах", th: "ตกจากที่สูง", ru: "падение"},
	{ko: "낙하물", en: "falling objects", vi: "vật rơi", zh: "坠物", uz: "tushayotgan buyum", km: "វត្ថុធ្លាក់", mn: "унах эд зүйл", th: "วัตถุตกหล่น", ru: "падающие предметы"},
	{ko: "전기", en: "electricity", vi: "điện", zh: "电", uz: "elektr", km: "អគ្គិសនី", mn: "цахилгаан", th: "ไฟฟ้า", ru: "электричество"},
	{ko: "크레인", en: "crane", vi: "cần cẩu", zh: "起重机", uz: "kran", km: "ស្ទូច", mn: "кран", th: "เครน", ru: "кран"},
	{ko: "신호", en: "signal", vi: "tín hiệu", zh: "信号", uz: "signal", km: "សញ្ញា", mn: "дохио", th: "สัญญาณ", ru: "сигнал"},
	{ko: "건물", en: "building", vi: "tòa nhà", zh: "建筑", uz: "bino", km: "អគារ", mn: "барилга", th: "อาคาร", ru: "здание"},
	{ko: "점심", en: "lunch", vi: "bữa trưa", zh: "午饭", uz: "tushlik", km: "អាហារថ្ងៃត្រង់", mn: "үдийн хоол", th: "อาหารกลางวัน", ru: "обед"},
	{ko: "식사", en: "meal", vi: "bữa ăn", zh: "用餐", uz: "ovqat", km: "អាហារ", mn: "хоол", th: "อาหาร", ru: "еда"},
	{ko: "올리세요", en: "lift it up", vi: "hãy nâng lên", zh: "请吊起", uz: "ko'taring", km: "សូមលើកឡើង", mn: "өргөнө үү", th: "กรุณายกขึ้น", ru: "поднимайте"},
	{ko: "내리세요", en: "lower it", vi: "hãy hạ xuống", zh: "请放下", uz: "tushiring", km: "សូមដាក់ចុះ", mn: "буулгана уу", th: "กรุณาวางลง", ru: "опускайте"},
	{ko: "감사합니다", en: "thank you", vi: "cảm ơn", zh: "谢谢", uz: "rahmat", km: "អរគុណ", mn: "баярлалаа", th: "ขอบคุณ", ru: "спасибо"},
	{ko: "도와주세요", en: "please help", vi: "xin giúp đỡ", zh: "请帮忙", uz: "yordam bering", km: "សូមជួយ", mn: "туслаач", th: "ช่วยด้วย", ru: "помогите"},
	{ko: "다쳤어요", en: "I am injured", vi: "tôi bị thương", zh: "我受伤了", uz: "jarohatlandim", km: "ខ្ញុំរងរបួស", mn: "би бэртсэн", th: "ฉันบาดเจ็บ", ru: "я ранен"},
	{ko: "아파요", en: "it hurts", vi: "tôi bị đau", zh: "我很疼", uz: "og'riyapti", km: "ឈឺ", mn: "өвдөж байна", th: "เจ็บ", ru: "мне больно"},
	{ko: "하세요", en: "please do", vi: "hãy làm", zh: "请做", uz: "qiling", km: "សូមធ្វើ", mn: "хийнэ үү", th: "กรุณาทำ", ru: "сделайте"},
}

// fragmentRule is a compiled dictionary rule for one language.
type fragmentRule struct {
	from string
	to   string
}

// fragmentDicts maps a language key to its rules, longest Korean fragment first.
var fragmentDicts = buildFragmentDicts(fragmentTable)

func buildFragmentDicts(rows []fragment) map[string][]fragmentRule {
	pick := map[string]func(fragment) string{
		"en": func(f fragment) string { return f.en },
		"vi": func(f fragment) string { return f.vi },
		"zh": func(f fragment) string { return f.zh },
		"uz": func(f fragment) string { return f.uz },
		"km": func(f fragment) string { return f.km },
		"mn": func(f fragment) string { return f.mn },
		"th": func(f fragment) string { return f.th },
		"ru": func(f fragment) string { return f.ru },
	}

	dicts := make(map[string][]fragmentRule, len(pick))
	for lang, get := range pick {
		rules := make([]fragmentRule, 0, len(rows))
		for _, row := range rows {
			to := get(row)
			if to == "" {
				to = row.en
			}
			rules = append(rules, fragmentRule{from: row.ko, to: to})
		}
		sort.SliceStable(rules, func(i, j int) bool {
			return utf8.RuneCountInString(rules[i].from) > utf8.RuneCountInString(rules[j].from)
		})
		dicts[lang] = rules
	}
	return dicts
}

func fragmentRules(lang string) []fragmentRule {
	if rules, ok := fragmentDicts[lang]; ok {
		return rules
	}
	return fragmentDicts[DefaultLanguage]
}
