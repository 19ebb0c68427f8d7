package glossary

// builtinEntries is the construction-site slang table shipped with the
// server. Order matters: it is the tie-break order for equal-length slang.
var builtinEntries = []Entry{
	{Slang: "가꾸", Standard: "틀 (Frame)", Translations: map[string]string{"vi": "Khung", "uz": "Ramka", "en": "Frame", "km": "ស៊ុម", "mn": "Хүрээ", "zh": "框架", "th": "กรอบ", "ru": "Рама"}},
	{Slang: "가꾸목", Standard: "각목 (Square timber)", Translations: map[string]string{"vi": "Gỗ vuông", "uz": "Kvadrat yog'och", "en": "Square timber", "km": "ឈើការេ", "mn": "Дөрвөлжин мод", "zh": "方木", "th": "ไม้เหลี่ยม", "ru": "Брус"}},
	{Slang: "가네", Standard: "직각 (Right angle)", Translations: map[string]string{"vi": "Góc vuông", "uz": "To'g'ri burchak", "en": "Right angle", "km": "មុំកែង", "mn": "Тэгш өнцөг", "zh": "直角", "th": "มุมฉาก", "ru": "Прямой угол"}},
	{Slang: "가다", Standard: "거푸집 (Form/Mold)", Translations: map[string]string{"vi": "Ván khuôn", "uz": "Qolip", "en": "Formwork", "km": "ទម្រង់", "mn": "Хэвлэгч", "zh": "模板", "th": "แบบหล่อ", "ru": "Опалубка"}},
	{Slang: "가베", Standard: "벽 (Wall)", Translations: map[string]string{"vi": "Tường", "uz": "Devor", "en": "Wall", "km": "ជញ្ជាំង", "mn": "Хана", "zh": "墙", "th": "ผนัง", "ru": "Стена"}},
	{Slang: "곰방", Standard: "운반 (Transport)", Translations: map[string]string{"vi": "Vận chuyển", "uz": "Tashish", "en": "Transport", "km": "ដឹកជញ្ជូន", "mn": "Тээвэрлэлт", "zh": "运输", "th": "ขนส่ง", "ru": "Транспортировка"}},
	{Slang: "공구리", Standard: "콘크리트 (Concrete)", Translations: map[string]string{"vi": "Bê tông", "uz": "Beton", "en": "Concrete", "km": "បេតុង", "mn": "Бетон", "zh": "混凝土", "th": "คอนกรีต", "ru": "Бетон"}},
	{Slang: "구배", Standard: "경사 (Slope)", Translations: map[string]string{"vi": "Độ dốc", "uz": "Nishablik", "en": "Slope", "km": "ជម្រាល", "mn": "Налуу", "zh": "坡度", "th": "ความลาดชัน", "ru": "Уклон"}},
	{Slang: "기리", Standard: "절단 (Cutting)", Translations: map[string]string{"vi": "Cắt", "uz": "Kesish", "en": "Cutting", "km": "កាត់", "mn": "Зүсэх", "zh": "切割", "th": "ตัด", "ru": "Резка"}},
	{Slang: "나라시", Standard: "평탄화 (Leveling)", Translations: map[string]string{"vi": "Làm phẳng", "uz": "Tekislash", "en": "Leveling", "km": "ធ្វើឲ្យរាប", "mn": "Тэгшлэх", "zh": "找平", "th": "ปรับระดับ", "ru": "Выравнивание"}},
	{Slang: "네지", Standard: "나사 (Screw)", Translations: map[string]string{"vi": "Vít", "uz": "Vint", "en": "Screw", "km": "វីស", "mn": "Боолт", "zh": "螺丝", "th": "สกรู", "ru": "Винт"}},
	{Slang: "노가다", Standard: "막일/노동 (Labor)", Translations: map[string]string{"vi": "Lao động", "uz": "Mehnat", "en": "Labor work", "km": "ការងារ", "mn": "Хөдөлмөр", "zh": "劳动", "th": "งานแรงงาน", "ru": "Труд"}},
	{Slang: "노미", Standard: "끌/정 (Chisel)", Translations: map[string]string{"vi": "Đục", "uz": "Keskir", "en": "Chisel", "km": "ដែក​កាត់", "mn": "Цуулуур", "zh": "凿子", "th": "สิ่ว", "ru": "Долото"}},
	{Slang: "누끼", Standard: "빼기/제거 (Removal)", Translations: map[string]string{"vi": "Loại bỏ", "uz": "Olib tashlash", "en": "Removal", "km": "ដក", "mn": "Авах", "zh": "去除", "th": "การนำออก", "ru": "Удаление"}},
	{Slang: "다데", Standard: "세로 (Vertical)", Translations: map[string]string{"vi": "Dọc", "uz": "Vertikal", "en": "Vertical", "km": "បញ្ឈរ", "mn": "Босоо", "zh": "纵向", "th": "แนวตั้ง", "ru": "Вертикаль"}},
	{Slang: "다루끼", Standard: "각목 (Timber)", Translations: map[string]string{"vi": "Gỗ thanh", "uz": "Yog'och", "en": "Timber", "km": "ឈើ", "mn": "Мод", "zh": "木材", "th": "ไม้", "ru": "Брусок"}},
	{Slang: "단도리", Standard: "준비/채비 (Preparation)", Translations: map[string]string{"vi": "Chuẩn bị", "uz": "Tayyorgarlik", "en": "Preparation", "km": "ការរៀបចំ", "mn": "Бэлтгэл", "zh": "准备", "th": "การเตรียมตัว", "ru": "Подготовка"}},
	{Slang: "덴바", Standard: "윗면 (Top surface)", Translations: map[string]string{"vi": "Mặt trên", "uz": "Yuqori qism", "en": "Top surface", "km": "ផ្ទៃខាងលើ", "mn": "Дээд тал", "zh": "表面", "th": "พื้นผิวด้านบน", "ru": "Верхняя поверхность"}},
	{Slang: "덴죠", Standard: "천장 (Ceiling)", Translations: map[string]string{"vi": "Trần nhà", "uz": "Shift", "en": "Ceiling", "km": "ពិដាន", "mn": "Таазан", "zh": "天花板", "th": "เพดาน", "ru": "Потолок"}},
	{Slang: "데마찌", Standard: "대기/작업중단 (Waiting)", Translations: map[string]string{"vi": "Chờ đợi", "uz": "Kutish", "en": "Waiting", "km": "រង់ចាំ", "mn": "Хүлээх", "zh": "等待", "th": "รอ", "ru": "Ожидание"}},
	{Slang: "도끼다시", Standard: "갈아내기 (Grinding)", Translations: map[string]string{"vi": "Mài", "uz": "Silliqlash", "en": "Grinding", "km": "កិន", "mn": "Нунтаглах", "zh": "打磨", "th": "การเจียร", "ru": "Шлифовка"}},
	{Slang: "돈내기", Standard: "하청 (Subcontract)", Translations: map[string]string{"vi": "Thầu phụ", "uz": "Subpudrat", "en": "Subcontract", "km": "អ្នកម៉ៅកា", "mn": "Туслан гүйцэтгэгч", "zh": "分包", "th": "รับเหมาช่วง", "ru": "Субподряд"}},
	{Slang: "마끼", Standard: "감기/감아올리기 (Winding)", Translations: map[string]string{"vi": "Quấn", "uz": "O'rash", "en": "Winding", "km": "រុំ", "mn": "Ороох", "zh": "缠绕", "th": "พัน", "ru": "Намотка"}},
	{Slang: "마끼자", Standard: "줄자 (Tape measure)", Translations: map[string]string{"vi": "Thước dây", "uz": "Lenta o'lchagich", "en": "Tape measure", "km": "ម៉ែត្រ", "mn": "Метр", "zh": "卷尺", "th": "ตลับเมตร", "ru": "Рулетка"}},
	{Slang: "메지", Standard: "줄눈 (Grout joint)", Translations: map[string]string{"vi": "Mạch vữa", "uz": "Teshik", "en": "Grout joint", "km": "បន្ទាត់", "mn": "Зай", "zh": "灰缝", "th": "รอยต่อ", "ru": "Шов"}},
	{Slang: "미다시", Standard: "제치장/전면노출 (Exposed)", Translations: map[string]string{"vi": "Lộ diện", "uz": "Ochiq", "en": "Exposed", "km": "ប៉ះពាល់", "mn": "Ил гарсан", "zh": "外露", "th": "โผล่", "ru": "Открытый"}},
	{Slang: "미쓰모리", Standard: "견적 (Estimate)", Translations: map[string]string{"vi": "Báo giá", "uz": "Hisoblab chiqish", "en": "Estimate", "km": "ការប៉ាន់ស្មាន", "mn": "Төсөв", "zh": "报价", "th": "ประมาณการ", "ru": "Смета"}},
	{Slang: "밀대", Standard: "미장흙손 (Trowel)", Translations: map[string]string{"vi": "Bay xây", "uz": "Malala", "en": "Trowel", "km": "បន្ទះ", "mn": "Шавар тараагч", "zh": "抹刀", "th": "เกรียง", "ru": "Кельма"}},
	{Slang: "바라시", Standard: "해체 (Dismantling)", Translations: map[string]string{"vi": "Tháo dỡ", "uz": "Demontaj", "en": "Dismantling", "km": "រុះរើ", "mn": "Буулгах", "zh": "拆除", "th": "ถอดประกอบ", "ru": "Демонтаж"}},
	{Slang: "반셍", Standard: "철선 (Wire)", Translations: map[string]string{"vi": "Dây thép", "uz": "Sim", "en": "Wire", "km": "ខ្សែដែក", "mn": "Утас", "zh": "铁丝", "th": "ลวด", "ru": "Проволока"}},
	{Slang: "베니야", Standard: "합판 (Plywood)", Translations: map[string]string{"vi": "Gỗ dán", "uz": "Fanera", "en": "Plywood", "km": "ផ្ទាំងឈើ", "mn": "Фанер", "zh": "胶合板", "th": "ไม้อัด", "ru": "Фанера"}},
	{Slang: "빠루", Standard: "못빼기/쇠지레 (Crowbar)", Translations: map[string]string{"vi": "Xà beng", "uz": "Kaltak", "en": "Crowbar", "km": "រនុក", "mn": "Хов", "zh": "撬棍", "th": "ชะแลง", "ru": "Лом"}},
	{Slang: "뻥칠", Standard: "과장/허풍 (Exaggeration)", Translations: map[string]string{"vi": "Phóng đại", "uz": "Bo'rtirish", "en": "Exaggeration", "km": "បំផ្លើស", "mn": "Хэтрүүлэлт", "zh": "夸张", "th": "พูดเกินจริง", "ru": "Преувеличение"}},
	{Slang: "사게부리", Standard: "다림추 (Plumb bob)", Translations: map[string]string{"vi": "Quả dọi", "uz": "Qurg'oshin", "en": "Plumb bob", "km": "ខ្សែបន្ទាត់", "mn": "Дарилга", "zh": "铅锤", "th": "ลูกดิ่ง", "ru": "Отвес"}},
	{Slang: "사뽀도", Standard: "지지대 (Support)", Translations: map[string]string{"vi": "Cột chống", "uz": "Tayanchok", "en": "Support", "km": "ទ្រ", "mn": "Тулгуур", "zh": "支撑", "th": "ค้ำยัน", "ru": "Опора"}},
	{Slang: "세와", Standard: "폭 (Width)", Translations: map[string]string{"vi": "Chiều rộng", "uz": "Kenglik", "en": "Width", "km": "ទទឹង", "mn": "Өргөн", "zh": "宽度", "th": "ความกว้าง", "ru": "Ширина"}},
	{Slang: "시아게", Standard: "마감 (Finishing)", Translations: map[string]string{"vi": "Hoàn thiện", "uz": "Tugatish", "en": "Finishing", "km": "បញ្ចប់", "mn": "Дуусгал", "zh": "收尾", "th": "งานตกแต่ง", "ru": "Отделка"}},
	{Slang: "시마이", Standard: "마무리 (Completion)", Translations: map[string]string{"vi": "Hoàn thành", "uz": "Yakunlash", "en": "Completion", "km": "បញ្ចប់", "mn": "Дуусгах", "zh": "完成", "th": "เสร็จสิ้น", "ru": "Завершение"}},
	{Slang: "신나", Standard: "희석제/시너 (Thinner)", Translations: map[string]string{"vi": "Dung môi", "uz": "Erituvchi", "en": "Thinner", "km": "ទឹកថ្នាំ", "mn": "Шингэлэгч", "zh": "稀释剂", "th": "ทินเนอร์", "ru": "Растворитель"}},
	{Slang: "아시바", Standard: "비계 (Scaffolding)", Translations: map[string]string{"vi": "Giàn giáo", "uz": "Iskala", "en": "Scaffolding", "km": "រនោច", "mn": "Шат", "zh": "脚手架", "th": "นั่งร้าน", "ru": "Леса"}},
	{Slang: "야끼", Standard: "불에 굽기/열처리 (Heating)", Translations: map[string]string{"vi": "Nung", "uz": "Qizdirish", "en": "Heating", "km": "ដុត", "mn": "Халаах", "zh": "加热", "th": "เผา", "ru": "Нагрев"}},
	{Slang: "야리끼리", Standard: "할당작업 (Quota work)", Translations: map[string]string{"vi": "Công khoán", "uz": "Kvota ishi", "en": "Quota work", "km": "ការងារកំណត់", "mn": "Хувь ажил", "zh": "定额工作", "th": "งานโควตา", "ru": "Сдельная работа"}},
	{Slang: "야마", Standard: "산/언덕 (Pile)", Translations: map[string]string{"vi": "Đống", "uz": "To'da", "en": "Pile", "km": "គំនរ", "mn": "Овоо", "zh": "堆", "th": "กอง", "ru": "Куча"}},
	{Slang: "오야지", Standard: "책임자/반장 (Supervisor)", Translations: map[string]string{"vi": "Giám sát", "uz": "Nazoratchi", "en": "Supervisor", "km": "អ្នកគ្រប់គ្រង", "mn": "Дарга", "zh": "负责人", "th": "หัวหน้า", "ru": "Прораб"}},
	{Slang: "우마", Standard: "말비계 (Horse scaffold)", Translations: map[string]string{"vi": "Giàn ngựa", "uz": "Ot platformasi", "en": "Horse scaffold", "km": "សេះ", "mn": "Морин тавцан", "zh": "马凳", "th": "ม้าไม้", "ru": "Подмости"}},
	{Slang: "유도리", Standard: "융통성/여유 (Flexibility)", Translations: map[string]string{"vi": "Linh hoạt", "uz": "Moslashuvchanlik", "en": "Flexibility", "km": "ត្រួសត្រាយ", "mn": "Уян хатан", "zh": "灵活", "th": "ความยืดหยุ่น", "ru": "Гибкость"}},
	{Slang: "젠다이", Standard: "선반 (Shelf)", Translations: map[string]string{"vi": "Kệ", "uz": "Javon", "en": "Shelf", "km": "ធ្នើ", "mn": "Тавиур", "zh": "架子", "th": "ชั้นวาง", "ru": "Полка"}},
	{Slang: "조이스", Standard: "장선 (Joist)", Translations: map[string]string{"vi": "Xà gồ", "uz": "Yog'och to'sin", "en": "Joist", "km": "ធ្នឹម", "mn": "Дам", "zh": "托梁", "th": "คาน", "ru": "Балка"}},
	{Slang: "짬밥", Standard: "경험/경력 (Experience)", Translations: map[string]string{"vi": "Kinh nghiệm", "uz": "Tajriba", "en": "Experience", "km": "បទពិសោធន៍", "mn": "Туршлага", "zh": "经验", "th": "ประสบการณ์", "ru": "Опыт"}},
	{Slang: "쿠사비", Standard: "쐐기 (Wedge)", Translations: map[string]string{"vi": "Nêm", "uz": "Ponk", "en": "Wedge", "km": "ស្នាម", "mn": "Шаантаг", "zh": "楔子", "th": "ลิ่ม", "ru": "Клин"}},
	{Slang: "기스", Standard: "긁힌자국/흠집 (Scratch)", Translations: map[string]string{"vi": "Vết xước", "uz": "Tirnalish", "en": "Scratch", "km": "រោយ", "mn": "Зураас", "zh": "刮痕", "th": "รอยขีดข่วน", "ru": "Царапина"}},
	{Slang: "다시", Standard: "다시/재작업 (Redo)", Translations: map[string]string{"vi": "Làm lại", "uz": "Qayta qilish", "en": "Redo", "km": "ធ្វើម្តងទៀត", "mn": "Дахин хийх", "zh": "重做", "th": "ทำใหม่", "ru": "Переделка"}},
	{Slang: "타일링", Standard: "타일공사 (Tiling)", Translations: map[string]string{"vi": "Ốp lát", "uz": "Plitka qo'yish", "en": "Tiling", "km": "ក្រាលក្បឿង", "mn": "Хавтан тавих", "zh": "贴瓷砖", "th": "ปูกระเบื้อง", "ru": "Облицовка плиткой"}},
	{Slang: "빠데", Standard: "퍼티/방충 (Putty)", Translations: map[string]string{"vi": "Bột trét", "uz": "Shpaklyovka", "en": "Putty", "km": "កែវ", "mn": "Шпатлюр", "zh": "腻子", "th": "ซีลเลอร์", "ru": "Шпатлевка"}},
	{Slang: "빤스", Standard: "합판/패널 (Panel)", Translations: map[string]string{"vi": "Tấm ván", "uz": "Panel", "en": "Panel", "km": "បន្ទះ", "mn": "Хавтан", "zh": "面板", "th": "แผ่น", "ru": "Панель"}},
	{Slang: "하바끼", Standard: "걸레받이 (Baseboard)", Translations: map[string]string{"vi": "Len chân tường", "uz": "Plinta", "en": "Baseboard", "km": "បន្ទះជើង", "mn": "Хажуугийн мод", "zh": "踢脚线", "th": "บัวเชิงผนัง", "ru": "Плинтус"}},
	{Slang: "함바", Standard: "현장식당 (Site canteen)", Translations: map[string]string{"vi": "Căng tin", "uz": "Oshxona", "en": "Canteen", "km": "កន្ទីន", "mn": "Гуанз", "zh": "食堂", "th": "โรงอาหาร", "ru": "Столовая"}},
	{Slang: "헤베", Standard: "평방미터 (㎡)", Translations: map[string]string{"vi": "Mét vuông", "uz": "Kvadrat metr", "en": "Square meter", "km": "ម៉ែត្រការ៉េ", "mn": "М.кв", "zh": "平方米", "th": "ตารางเมตร", "ru": "Квадратный метр"}},
	{Slang: "히끼", Standard: "당김/인장 (Pull)", Translations: map[string]string{"vi": "Kéo", "uz": "Tortish", "en": "Pull", "km": "ទាញ", "mn": "Татах", "zh": "拉", "th": "ดึง", "ru": "Тяга"}},
	{Slang: "가이당", Standard: "계단 (Stairs)", Translations: map[string]string{"vi": "Cầu thang", "uz": "Zina", "en": "Stairs", "km": "ជណ្ដើរ", "mn": "Шат", "zh": "楼梯", "th": "บันได", "ru": "Лестница"}},
	{Slang: "레벨", Standard: "수평 (Level)", Translations: map[string]string{"vi": "Ngang bằng", "uz": "Gorizontal", "en": "Level", "km": "កម្រិត", "mn": "Түвшин", "zh": "水平", "th": "ระดับ", "ru": "Уровень"}},
	{Slang: "센터", Standard: "중심 (Center)", Translations: map[string]string{"vi": "Trung tâm", "uz": "Markaz", "en": "Center", "km": "កណ្ដាល", "mn": "Төв", "zh": "中心", "th": "ศูนย์กลาง", "ru": "Центр"}},
	{Slang: "앙카", Standard: "앵커/고정장치 (Anchor)", Translations: map[string]string{"vi": "Neo", "uz": "Anker", "en": "Anchor", "km": "យុថ្កា", "mn": "Анкер", "zh": "锚", "th": "สมอ", "ru": "Анкер"}},
	{Slang: "타카", Standard: "스테이플러/타카기 (Stapler)", Translations: map[string]string{"vi": "Súng bắn ghim", "uz": "Steypler", "en": "Staple gun", "km": "ម៉ាស៊ីនទប់", "mn": "Степлер", "zh": "订书机", "th": "แม็กเย็บ", "ru": "Степлер"}},
	{Slang: "레미콘", Standard: "레디믹스콘크리트 (Ready-mix)", Translations: map[string]string{"vi": "Bê tông trộn sẵn", "uz": "Tayyor beton", "en": "Ready-mix", "km": "បេតុងលាយ", "mn": "Бэлэн бетон", "zh": "预拌混凝土", "th": "คอนกรีตผสมเสร็จ", "ru": "Товарный бетон"}},
	{Slang: "철근", Standard: "철근 (Rebar)", Translations: map[string]string{"vi": "Cốt thép", "uz": "Armatura", "en": "Rebar", "km": "ដែក", "mn": "Арматур", "zh": "钢筋", "th": "เหล็ก", "ru": "Арматура"}},
	{Slang: "타설", Standard: "콘크리트부음 (Pouring)", Translations: map[string]string{"vi": "Đổ bê tông", "uz": "Quyish", "en": "Pouring", "km": "ចាក់", "mn": "Цутгах", "zh": "浇筑", "th": "เท", "ru": "Заливка"}},
	{Slang: "양생", Standard: "콘크리트양생 (Curing)", Translations: map[string]string{"vi": "Bảo dưỡng", "uz": "Pishirish", "en": "Curing", "km": "ព្យាបាល", "mn": "Эмчлэх", "zh": "养护", "th": "บ่ม", "ru": "Твердение"}},
	{Slang: "다짐", Standard: "다짐작업 (Compaction)", Translations: map[string]string{"vi": "Đầm nén", "uz": "Zich qilish", "en": "Compaction", "km": "បង្ហាប់", "mn": "Нягтруулах", "zh": "夯实", "th": "บดอัด", "ru": "Уплотнение"}},
}
