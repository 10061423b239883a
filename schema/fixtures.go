package schema

// Directory fixtures loaded by the migrate command. Passwords of doctors
// and medics are assigned at seeding time.

var DefaultHospitals = []Hospital{
	{1, "SRM Hospital", Specialties{"general", "cardiology", "pediatrics", "emergency"}, "SRM Nagar, Kattankulathur, Chennai", 12.8230, 80.0444, 10, 4.3, "+914427400000"},
	{2, "Apollo Clinic Guduvancheri", Specialties{"general", "orthopedics", "dermatology"}, "GST Road, Guduvancheri, Chennai", 12.8451, 80.0625, 15, 4.1, "+914427220000"},
	{3, "Government Primary Health Centre", Specialties{"general", "maternal", "child-care"}, "Kattankulathur PHC", 12.8205, 80.0401, 8, 3.9, "+914427300111"},
	{4, "Global Hospitals", Specialties{"cardiology", "neurology", "emergency"}, "Perumbakkam, Chennai", 12.8902, 80.2279, 25, 4.5, "+914447770000"},
	{5, "Chettinad Health City", Specialties{"general", "orthopedics", "emergency"}, "Kelambakkam, Chennai", 12.7905, 80.2167, 20, 4.2, "+914447450000"},
	{6, "Hindu Mission Hospital", Specialties{"general", "pediatrics", "gynecology"}, "Tambaram West, Chennai", 12.9249, 80.1136, 30, 4.0, "+914422420000"},
	{7, "MIOT International", Specialties{"orthopedics", "cardiology", "critical-care"}, "Manapakkam, Chennai", 13.0213, 80.1766, 35, 4.6, "+914442000000"},
	{8, "Fortis Malar Hospital", Specialties{"cardiology", "emergency", "general"}, "Adyar, Chennai", 13.0067, 80.2570, 40, 4.4, "+914424900000"},
	{9, "Government General Hospital", Specialties{"emergency", "trauma", "general"}, "Park Town, Chennai", 13.0827, 80.2707, 45, 3.8, "+914425350000"},
	{10, "Kauvery Hospital", Specialties{"cardiology", "nephrology", "general"}, "Alwarpet, Chennai", 13.0339, 80.2505, 38, 4.3, "+914440000000"},
}

var DefaultDoctors = []Doctor{
	{ID: 1, Name: "Dr. Arjun Kumar", Specialty: "general", Phone: "+919900000001", HospitalID: 1, Verified: true},
	{ID: 2, Name: "Dr. Meera Iyer", Specialty: "dermatology", Phone: "+919900000002", HospitalID: 2, Verified: true},
	{ID: 3, Name: "Dr. S. Lakshmi", Specialty: "pediatrics", Phone: "+919900000003", HospitalID: 1, Verified: true},
	{ID: 4, Name: "Dr. Raghav Menon", Specialty: "cardiology", Phone: "+919900000004", HospitalID: 4, Verified: true},
	{ID: 5, Name: "Dr. Anitha Rao", Specialty: "gynecology", Phone: "+919900000005", HospitalID: 6, Verified: true},
	{ID: 6, Name: "Dr. Prakash N", Specialty: "orthopedics", Phone: "+919900000006", HospitalID: 5, Verified: true},
	{ID: 7, Name: "Dr. Kavita Shah", Specialty: "neurology", Phone: "+919900000007", HospitalID: 4, Verified: true},
	{ID: 8, Name: "Dr. Manoj Iyer", Specialty: "emergency", Phone: "+919900000008", HospitalID: 8, Verified: true},
	{ID: 9, Name: "Dr. Shalini Gupta", Specialty: "nephrology", Phone: "+919900000009", HospitalID: 10, Verified: true},
	{ID: 10, Name: "Dr. Vinod Krishnan", Specialty: "trauma", Phone: "+919900000010", HospitalID: 9, Verified: true},
}

var DefaultNGOs = []NGO{
	{1, "RapidMed Ambulance Service", "+919900000010", "Kattankulathur", 12.8250, 80.0450},
	{2, "Chennai Emergency Response", "+919900000011", "Chennai", 12.8400, 80.0600},
	{3, "108 Government Ambulance", "108", "Tamil Nadu", 12.9000, 80.2000},
	{4, "Apollo Emergency Transport", "+919900000012", "South Chennai", 12.9500, 80.2400},
	{5, "Red Cross Ambulance", "+919900000013", "Chengalpattu", 12.7000, 80.0000},
	{6, "LifeLine Emergency Services", "+919900000014", "Tambaram", 12.9300, 80.1200},
	{7, "CARE Ambulance Network", "+919900000015", "OMR", 12.8600, 80.2300},
	{8, "MedRescue Services", "+919900000016", "Adyar", 13.0000, 80.2600},
	{9, "Emergency One", "+919900000017", "Velachery", 12.9800, 80.2200},
	{10, "Rapid Response Unit", "+919900000018", "Chennai Metro", 13.0500, 80.2800},
}

var DefaultMedics = []Medic{
	{ID: 1, Name: "Rahul Das", Phone: "+919900001001", Role: "paramedic", NGOID: 1, ExperienceYears: 5, Verified: true},
	{ID: 2, Name: "Sneha Paul", Phone: "+919900001002", Role: "emt", NGOID: 2, ExperienceYears: 3, Verified: true},
	{ID: 3, Name: "Mohammed Irfan", Phone: "+919900001003", Role: "paramedic", NGOID: 3, ExperienceYears: 7, Verified: true},
	{ID: 4, Name: "Kavya Nair", Phone: "+919900001004", Role: "emt", NGOID: 4, ExperienceYears: 4, Verified: true},
	{ID: 5, Name: "Arjun Patel", Phone: "+919900001005", Role: "advanced_paramedic", NGOID: 5, ExperienceYears: 9, Verified: true},
	{ID: 6, Name: "Neethu Varghese", Phone: "+919900001006", Role: "emt", NGOID: 6, ExperienceYears: 2, Verified: true},
	{ID: 7, Name: "Suresh Babu", Phone: "+919900001007", Role: "paramedic", NGOID: 7, ExperienceYears: 6, Verified: true},
	{ID: 8, Name: "Pooja Malhotra", Phone: "+919900001008", Role: "emt", NGOID: 8, ExperienceYears: 3, Verified: true},
	{ID: 9, Name: "Naveen Kumar", Phone: "+919900001009", Role: "paramedic", NGOID: 9, ExperienceYears: 8, Verified: true},
	{ID: 10, Name: "Ayesha Rahman", Phone: "+919900001010", Role: "advanced_paramedic", NGOID: 10, ExperienceYears: 10, Verified: true},
}
