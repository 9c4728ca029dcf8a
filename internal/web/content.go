package web

// Business details shown across the public pages.
const (
	brandName      = "PROROOF"
	phoneDisplay   = "017-889 7151"
	phoneTel       = "+60178897151"
	serviceArea    = "KL & Selangor"
	whatsAppURL    = "https://wa.me/60178897151?text=I%20am%20interested%20in%20Free%20Inspection%20/%20Roof%20Leaking%20Repair."
	replyTimeNotes = "Typical replies within 2 hours"
)

type stat struct {
	Value string
	Label string
}

type titled struct {
	Title       string
	Description string
}

type faq struct {
	Question string
	Answer   string
}

var heroPromises = []string{
	"Free on-site inspection",
	"Written warranty on invoice",
	"Problem of leakage clearly explained before work",
}

var stats = []stat{
	{Value: "25+", Label: "Years Experience"},
	{Value: "1,000+", Label: "Past Customers"},
	{Value: "10k+", Label: "Facebook Followers"},
	{Value: "2h", Label: "Response"},
}

var problemSigns = []string{
	"Water dripping from the ceiling during rain",
	"Brown stains or patches on the ceiling",
	"Peeling paint or damp walls near the roof line",
	"Cracked, broken or shifted roof tiles",
	"Blocked or overflowing gutters",
	"Musty smell or mould in the attic space",
}

var services = []titled{
	{Title: "Roof Leakage Repair", Description: "Targeted repair of leaking tiles, flashing, ridges and valleys without replacing the whole roof."},
	{Title: "Roof Waterproofing", Description: "Membrane and sealant systems for concrete slabs, gutters and problem areas."},
	{Title: "Free Site Inspection for Leaks", Description: "We find the source of the leak and explain it before any work is quoted."},
}

var processSteps = []titled{
	{Title: "Contact Us", Description: "Free inspection for homeowners at KL & Selangor"},
	{Title: "Free Inspection Performed", Description: "We locate the leak and show you photos of the cause."},
	{Title: "Invoice Issued + Written Warranty", Description: "A clear quotation with the warranty stated on the invoice."},
	{Title: "Professional Repair", Description: "Our in-house team carries out the repair with progress updates."},
	{Title: "Clean Up", Description: "The site is cleaned before we leave."},
	{Title: "Installation Complete + Site Test", Description: "The repaired area is water tested with you."},
}

var reasons = []titled{
	{Title: "FREE site inspection & personalized quotation", Description: "Before any work begins"},
	{Title: "25+ years experience & 1,000+ leaks fixed", Description: "Proven track record of success"},
	{Title: "Up to 5-year written warranty", Description: "Stated clearly on your invoice"},
	{Title: "Affordable pricing that follows market rates", Description: "Fair and transparent pricing"},
	{Title: "Real after-sales service", Description: "We support you even after the job"},
	{Title: "We respect property cleanliness", Description: "Clean site area before we leave"},
	{Title: "Progress updates during work", Description: "Photos and videos of our progress"},
	{Title: "Fast replies; no middlemen/outsourcing", Description: "Direct communication with our team"},
}

var faqs = []faq{
	{Question: "Do I need to replace the whole roof if it leaks?", Answer: "Usually not! Most leaks are localized issues affecting specific areas like roof tiles or gutter only. Complete roof replacement is rarely necessary for leak issues."},
	{Question: "How much does roof repair cost in KL & Selangor?", Answer: "Costs depend on the affected area, materials needed, and site conditions. We provide free inspection and a quotation before any work begins, so you know exactly what you're paying for."},
	{Question: "How long will a leaking roof repair take?", Answer: "Small repairs typically take ½ to 1 day, while complex issues may require 1-3 days. Weather conditions may affect timing, but we never cut corners to rush a job."},
	{Question: "Do you charge for inspection or estimates?", Answer: "No. Our inspection and quotation are completely free. We come to your site, assess the problem, explain our findings clearly, and provide a detailed quotation at no cost to you."},
	{Question: "What kind of warranty is included?", Answer: "We provide up to 5 years warranty on workmanship, written clearly on your invoice."},
	{Question: "What if it leaks again?", Answer: "We return to diagnose and resolve any issues under our warranty terms at no additional cost. Our goal is a permanent fix, and we stand behind our work."},
	{Question: "Which areas do you serve?", Answer: "We serve Kuala Lumpur and Selangor within approximately 1-hour drive from our base in Klang. This includes areas like Shah Alam, Puchong, Petaling Jaya, Subang Jaya, Kajang, Cheras, Ampang, and surrounding areas."},
	{Question: "Do I need to be at home for inspection/repair?", Answer: "Inspection: preferably yes. Repair: not necessary if we have roof access; we'll send photo/video updates."},
	{Question: "Do you use middlemen or outsource?", Answer: "No. Work is done by our in-house team for consistent quality."},
	{Question: "Can you handle condos/high-rises?", Answer: "Yes, with management access approval. We'll advise on permits and safety."},
}

var preferredTimes = []string{
	"Morning (9–12)",
	"Afternoon (12–3)",
	"Evening (3–6)",
	"Anytime",
}
