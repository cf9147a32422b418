package llm

import (
	"strings"

	"github.com/oguzakin/eligibility-tracker/constants"
)

// SystemPrompt is shared by every document type: the model is a document
// analyst and must answer with JSON only.
const SystemPrompt = "Sen bir belge analiz asistanısın. " +
	"Verilen belgeyi analiz edip istenen bilgileri JSON formatında çıkar. " +
	"Sadece JSON döndür, başka açıklama yapma."

// Turkish sector names, used inside prompts. Output keys stay English.
var sectorPromptNames = map[constants.Sector]string{
	constants.SectorEnergy:    "Enerji",
	constants.SectorMetal:     "Metal",
	constants.SectorMineral:   "Mineral",
	constants.SectorChemistry: "Kimya",
	constants.SectorWaste:     "Atık",
	constants.SectorOther:     "Diğer",
}

// BuildPrompt renders the extraction prompt for one text segment. The
// prompts are deliberately repetitive about not inventing data: small local
// models hallucinate plausible Turkish names and years otherwise.
func BuildPrompt(req ExtractRequest) string {
	var b strings.Builder
	b.WriteString(instructionFor(req))
	b.WriteString("\n\n=== BELGE İÇERİĞİ ===\n")
	b.WriteString(req.Text)
	b.WriteString("\n\n=== KURALLAR ===\n")
	b.WriteString("1. SADECE BELGEDE AÇIKÇA YAZILI BİLGİLERİ ÇIKAR!\n")
	b.WriteString("2. Belgede olmayan bilgi için null yaz, ASLA TAHMİN ETME!\n")
	b.WriteString("3. Sayısal alanlar sayı olmalı, boolean alanlar true/false olmalı (string değil!)\n")
	b.WriteString("4. JSON geçerli olmalı.\n")
	b.WriteString("\nSADECE JSON DÖNDÜR. AÇIKLAMA, YORUM, MARKDOWN YAPMA!\n")
	return b.String()
}

func instructionFor(req ExtractRequest) string {
	switch req.DocType {
	case constants.CV:
		return strings.Join([]string{
			"Sen bir CV analiz uzmanısın. Aşağıdaki CV/Özgeçmiş belgesini analiz et ve şu alanları çıkar:",
			`- "full_name": tam adı`,
			`- "university": en yüksek mezuniyet üniversitesi`,
			`- "department": bölüm adı`,
			`- "graduation_year": mezuniyet yılı (sayı)`,
			`- "total_experience_years": toplam iş deneyimi (yıl)`,
			`- "total_experience_months": kalan ay (0-11)`,
			`- "experience_energy": enerji sektörü deneyimi yıl (belgede yoksa null)`,
			`- "experience_metal": metal sektörü deneyimi yıl (belgede yoksa null)`,
			`- "experience_mineral": mineral sektörü deneyimi yıl (belgede yoksa null)`,
			`- "experience_chemistry": kimya sektörü deneyimi yıl (belgede yoksa null)`,
			`- "experience_waste": atık sektörü deneyimi yıl (belgede yoksa null)`,
			`- "experience_other": diğer sektör deneyimi yıl (belgede yoksa null)`,
			`- "projects": belgedeki projeler, her biri {"type","title","year"}; yoksa boş dizi`,
			"İş deneyimini SADECE belgedeki tarihlerden hesapla: 2015-2023 = 8 yıl, fazla ekleme!",
			"Sektör tecrübesi bilinmiyorsa null yaz, 0 DEĞİL!",
		}, "\n")

	case constants.Diploma:
		return strings.Join([]string{
			"Sen bir diploma analiz uzmanısın. YÖK mezuniyet belgesindeki HER mezuniyet kaydını ayrı bir diploma olarak çıkar.",
			"Bir kişinin birden fazla diploması olabilir (Lisans, Yüksek Lisans, Doktora).",
			`Çıktı: {"diplomas": [...]} — tek diploma olsa bile dizi döndür. Her diploma için:`,
			`- "national_id": 11 haneli T.C. kimlik numarası`,
			`- "first_name", "last_name": öğrencinin adı ve soyadı (BÜYÜK HARFLE)`,
			`- "university": üniversitenin TAM resmi adı (kısaltma YAPMA!)`,
			`- "faculty": fakülte/enstitü/MYO adı`,
			`- "department": program/bölüm adı (parantez içi detayları KORU, örn "ÇEVRE MÜHENDİSLİĞİ (YL) (TEZLİ)")`,
			`- "graduation_date": GG/AA/YYYY formatında mezuniyet tarihi`,
			`- "diploma_no": diploma numarası`,
			`- "gpa": diploma notu, sayı (2.89 veya 86.75 gibi)`,
			`- "status": genellikle "Mezuniyet"`,
		}, "\n")

	case constants.CriminalRecord:
		return strings.Join([]string{
			"Sen bir adli sicil belgesi analiz uzmanısın. Adli sicil durumunu tespit et:",
			`- "has_criminal_record": sabıka kaydı var mı? (true/false)`,
			`  "Sabıka kaydı bulunmamaktadır" veya "yoktur" → false; suç kaydı varsa → true`,
			`- "record_code": belgede yazan kod (varsa, yoksa null)`,
		}, "\n")

	case constants.ProjectFile:
		return strings.Join([]string{
			"Sen bir proje belgesi analiz uzmanısın. Proje bilgilerini çıkar:",
			`- "project_type": "TÜBİTAK Projesi" | "BAP" | "Horizon 2020" | "Sanayi" | "Diğer"`,
			`- "title": proje başlığı`,
			`- "year": proje yılı (sayı)`,
			"Birden fazla proje varsa SADECE İLKİNİ çıkar.",
		}, "\n")

	case constants.SectorCertificate:
		sector := sectorPromptNames[req.Sector]
		if sector == "" {
			sector = "Diğer"
		}
		return strings.Join([]string{
			"Sen bir sektör belgesi analiz uzmanısın. Aşağıdaki " + sector + " sektör belgesini analiz et:",
			`- "sector": "` + sector + `" (DEĞİŞTİRME!)`,
			`- "company": belgedeki firma/kurum adı`,
			`- "full_name": kişinin adı soyadı`,
			`- "position": pozisyon (Mühendis/Uzman/Müfettiş vb.)`,
			`- "start_date", "end_date": çalışma süresi, ISO 8601 ("YYYY-MM-DD")`,
			`- "duration_years", "duration_months": SADECE belgedeki tarihlerden; tarih yoksa null`,
			`- "certificate_date": belge tarihi`,
			`- "issuer": düzenleyen kurum`,
		}, "\n")
	}

	label := req.DocTypeLabel
	if label == "" {
		label = string(req.DocType)
	}
	return "Sen bir belge analiz uzmanısın. Aşağıdaki \"" + label + "\" belgesinden " +
		"kişi, eğitim ve iş deneyimi ile ilgili bulabildiğin alanları JSON olarak çıkar."
}
