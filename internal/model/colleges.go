package model

import "sort"

// TamilNaduColleges backs the college autocomplete on the student form.
// Kept in rough tier order here and sorted once at init for display.
var TamilNaduColleges = []string{
	"Indian Institute of Technology Madras (IITM)",
	"National Institute of Technology, Tiruchirappalli (NITT)",
	"Anna University - CEG Campus, Chennai",
	"Anna University - ACT Campus, Chennai",
	"Anna University - MIT Campus, Chromepet",
	"Vellore Institute of Technology (VIT), Vellore",
	"Vellore Institute of Technology (VIT), Chennai",
	"Amrita Vishwa Vidyapeetham, Coimbatore",
	"SRM Institute of Science and Technology, Kattankulathur",
	"SRM Institute of Science and Technology, Ramapuram",
	"Sathyabama Institute of Science and Technology, Chennai",
	"PSG College of Technology, Coimbatore",
	"SSN College of Engineering, Kalavakkam",
	"Thiagarajar College of Engineering (TCE), Madurai",
	"Amrita School of Engineering, Coimbatore",
	"Government College of Technology (GCT), Coimbatore",
	"Government College of Engineering (GCE), Salem",
	"Government College of Engineering, Tirunelveli",
	"Government College of Engineering, Bargur",
	"Government College of Engineering, Thanjavur",
	"Government College of Engineering, Dharmapuri",
	"Government College of Engineering, Bodinayakkanur",
	"Government College of Engineering, Srirangam",
	"Alagappa Chettiar Government College of Engineering and Technology, Karaikudi",
	"University College of Engineering, Kancheepuram",
	"University College of Engineering, Villupuram",
	"University College of Engineering, Arni",
	"University College of Engineering, Ariyalur",
	"University College of Engineering, Thirukkuvalai",
	"University College of Engineering, Pattukkottai",
	"University College of Engineering, Nagercoil",
	"University College of Engineering, Thoothukudi",
	"University College of Engineering, Ramanathapuram",
	"PSG Institute of Technology and Applied Research, Coimbatore",
	"Coimbatore Institute of Technology (CIT), Coimbatore",
	"Kumaraguru College of Technology (KCT), Coimbatore",
	"Sri Krishna College of Engineering and Technology (SKCET), Coimbatore",
	"Sri Krishna College of Technology (SKCT), Coimbatore",
	"Mepco Schlenk Engineering College, Sivakasi",
	"Kongu Engineering College, Perundurai",
	"Bannari Amman Institute of Technology (BIT), Sathyamangalam",
	"Sona College of Technology, Salem",
	"Rajalakshmi Engineering College (REC), Chennai",
	"St. Joseph's College of Engineering, Chennai",
	"Sri Sairam Engineering College, Chennai",
	"Easwari Engineering College, Chennai",
	"Saveetha Engineering College, Chennai",
	"Panimalar Engineering College, Chennai",
	"Loyola-ICAM College of Engineering and Technology (LICET), Chennai",
	"Meenakshi Sundararajan Engineering College, Chennai",
	"R.M.K. Engineering College, Kavaraipettai",
	"Velammal Engineering College, Chennai",
	"Jeppiaar Engineering College, Chennai",
	"Vels Institute of Science, Technology & Advanced Studies (VISTAS)",
	"K.L.N. College of Engineering, Pottapalayam",
	"Vel Tech Rangarajan Dr. Sagunthala R&D Institute of Science and Technology",
	"Hindustan Institute of Technology and Science, Chennai",
	"KPR Institute of Engineering and Technology, Coimbatore",
	"Dr. Mahalingam College of Engineering and Technology, Pollachi",
	"Salem Sowdeswari College, Salem",
	"Knowledge Institute of Technology (KIOT), Salem",
	"Narasu's Sarathy Institute of Technology, Salem",
	"AVS Engineering College, Salem",
	"Mahendra Engineering College, Namakkal",
	"Mahendra Institute of Technology, Namakkal",
	"Vivekanandha College of Engineering for Women, Tiruchengode",
	"K.S. Rangasamy College of Technology, Tiruchengode",
	"Sengunthar Engineering College, Tiruchengode",
	"Excel Engineering College, Namakkal",
	"Paavai Engineering College, Namakkal",
	"Gnanamani College of Technology, Namakkal",
	"Muthayammal Engineering College, Rasipuram",
	"Adhiyamaan College of Engineering, Hosur",
	"Erode Sengunthar Engineering College, Erode",
	"Nandha Engineering College, Erode",
	"Velalar College of Engineering and Technology, Erode",
	"SNS College of Technology, Coimbatore",
	"SNS College of Engineering, Coimbatore",
	"Hindusthan College of Engineering and Technology, Coimbatore",
	"Karpagam College of Engineering, Coimbatore",
	"Karpagam Institute of Technology, Coimbatore",
	"Akshaya College of Engineering and Technology, Coimbatore",
	"Sri Eshwar College of Engineering, Coimbatore",
	"Kathir College of Engineering, Coimbatore",
	"Park College of Engineering and Technology, Coimbatore",
	"Dhirajlal Gandhi College of Technology, Salem",
	"Tagore Engineering College, Chennai",
	"Anand Institute of Higher Technology, Chennai",
	"Dhanalakshmi Srinivasan College of Engineering, Perambalur",
	"Saranathan College of Engineering, Trichy",
	"K. Ramakrishnan College of Engineering, Trichy",
	"K. Ramakrishnan College of Technology, Trichy",
	"M.A.M. College of Engineering, Trichy",
	"Indra Ganesan College of Engineering, Trichy",
	"Sethu Institute of Technology, Kariapatti",
	"Kamiraj College of Engineering and Technology, Virudhunagar",
	"P.S.R. Engineering College, Sivakasi",
	"Kalasalingam Academy of Research and Education, Krishnankoil",
	"Francis Xavier Engineering College, Tirunelveli",
	"PSN College of Engineering and Technology, Tirunelveli",
	"National Engineering College, Kovilpatti",
	"E.G.S. Pillay Engineering College, Nagapattinam",
	"Anjalai Ammal Mahalingam Engineering College, Thiruvarur",
	"A.V.C. College of Engineering, Mayiladuthurai",
	"St. Xavier's Catholic College of Engineering, Nagercoil",
	"Ponjesly College of Engineering, Nagercoil",
	"Arunai Engineering College, Tiruvannamalai",
	"S.K.P. Engineering College, Tiruvannamalai",
	"V.R.S. College of Engineering and Technology, Viluppuram",
	"Mailam Engineering College, Villupuram",
	"IFET College of Engineering, Villupuram",
	"Jawahar Engineering College, Chennai",
	"Misrimal Navajee Munoth Jain Engineering College, Chennai",
	"T.J.S Engineering College, Thiruvallur",
	"Prathyusha Engineering College, Thiruvallur",
	"P.B. College of Engineering, Sriperumbudur",
	"DMI College of Engineering, Chennai",
	"Jeppiaar Maamallan Engineering College, Sriperumbudur",
	"Rajalakshmi Institute of Technology, Kuthambakkam",
	"Alpha College of Engineering, Chennai",
	"SRM TRP Engineering College, Trichy",
	"Care College of Engineering, Trichy",
	"Parisutham Institute of Technology and Science, Thanjavur",
	"Kings College of Engineering, Thanjavur",
	"Shanmugha Arts, Science, Technology & Research Academy (SASTRA), Tanjore",
	"Periyar Maniammai Institute of Science and Technology, Thanjavur",
	"Vinayaka Mission's Kirupananda Variyar Engineering College, Salem",
	"Annapoorana Engineering College, Salem",
	"Bharath Institute of Higher Education and Research, Chennai",
	"Vignans Foundation for Science Technology and Research",
	"Karunya Institute of Technology and Sciences, Coimbatore",
}

func init() {
	sort.Strings(TamilNaduColleges)
}
