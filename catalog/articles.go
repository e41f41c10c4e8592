package catalog

import "codecraft-api/models"

// articles ist die eingebettete Artikelsammlung der Plattform. Die Inhalte
// liegen als bereinigter Klartext vor (Listen bereits mit •-Markern).
var articles = []models.Article{
	{
		ID:      "js-basics-1",
		Title:   "Memahami Dasar-Dasar JavaScript untuk Pemula",
		Excerpt: "Pelajari konsep fundamental JavaScript mulai dari variabel, tipe data, hingga fungsi dengan cara yang mudah dipahami.",
		Content: `Memahami Dasar-Dasar JavaScript untuk Pemula

Pengantar
JavaScript adalah bahasa pemrograman yang sangat populer dan mudah dipelajari. Dalam artikel ini, kita akan mempelajari konsep-konsep dasar yang perlu Anda ketahui.

Variabel dan Tipe Data
JavaScript memiliki beberapa tipe data dasar:
• String: Untuk teks
• Number: Untuk angka
• Boolean: Untuk nilai true/false
• Array: Untuk menyimpan banyak nilai
• Object: Untuk menyimpan data kompleks

Contoh deklarasi variabel:

let nama = "John Doe";
let umur = 25;
let isStudent = true;
let hobi = ["coding", "gaming", "reading"];

Fungsi
Fungsi adalah blok kode yang dapat digunakan berulang kali:

function sapa(nama) {
    return "Halo, " + nama + "!";
}

console.log(sapa("Budi")); // Output: Halo, Budi!

Kesimpulan
Memahami dasar-dasar JavaScript sangat penting untuk menjadi web developer yang handal. Terus berlatih dan jangan takut untuk bereksperimen!`,
		Category:    "JavaScript",
		Tags:        []string{"JavaScript", "Pemula", "Web Development"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-01-15",
		ReadTime:    8,
		Difficulty:  models.DifficultyBeginner,
	},
	{
		ID:      "js-dom-manipulation",
		Title:   "Manipulasi DOM dengan JavaScript",
		Excerpt: "Belajar cara mengubah dan berinteraksi dengan elemen HTML menggunakan JavaScript DOM API.",
		Content: `Manipulasi DOM dengan JavaScript

Apa itu DOM?
DOM (Document Object Model) adalah representasi struktur dokumen HTML dalam bentuk objek yang dapat dimanipulasi dengan JavaScript.

Mengakses Elemen
const element = document.getElementById('myElement');
const elements = document.getElementsByClassName('myClass');
const modern = document.querySelector('#myElement');

Mengubah Konten
element.textContent = 'Teks baru';
element.setAttribute('class', 'new-class');

Event Handling
button.addEventListener('click', function() {
    alert('Button diklik!');
});

Manipulasi DOM adalah skill fundamental untuk membuat website interaktif.`,
		Category:    "JavaScript",
		Tags:        []string{"JavaScript", "DOM", "Web Development"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-01-20",
		ReadTime:    10,
		Difficulty:  models.DifficultyIntermediate,
	},
	{
		ID:      "js-async-await",
		Title:   "Memahami Async/Await dalam JavaScript",
		Excerpt: "Pelajari cara menangani operasi asynchronous dengan async/await untuk kode yang lebih bersih dan mudah dibaca.",
		Content: `Memahami Async/Await dalam JavaScript

Pengantar Asynchronous Programming
JavaScript adalah bahasa single-threaded, namun dapat menangani operasi asynchronous dengan baik menggunakan Promise dan async/await.

Async/Await
async function fetchData() {
    try {
        const response = await fetch('/api/data');
        const data = await response.json();
        console.log(data);
    } catch (error) {
        console.error('Error:', error);
    }
}

Keuntungan async/await:
• Kode lebih mudah dibaca, mirip kode synchronous
• Error handling dengan try/catch
• Debugging lebih sederhana

Gunakan async/await untuk setiap operasi I/O seperti pemanggilan API dan akses database.`,
		Category:    "JavaScript",
		Tags:        []string{"JavaScript", "Async", "Promise", "ES6"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-01-25",
		ReadTime:    12,
		Difficulty:  models.DifficultyAdvanced,
	},
	{
		ID:      "react-intro",
		Title:   "Pengenalan React untuk Pemula",
		Excerpt: "Mulai perjalanan Anda dalam React dengan memahami konsep komponen, JSX, dan state management.",
		Content: `Pengenalan React untuk Pemula

Apa itu React?
React adalah library JavaScript untuk membangun user interface, dikembangkan oleh Facebook. React menggunakan konsep komponen yang dapat digunakan kembali.

Komponen dan JSX
function Welcome(props) {
    return <h1>Halo, {props.name}!</h1>;
}

JSX memungkinkan kita menulis markup mirip HTML langsung di dalam JavaScript.

State
State adalah data internal komponen yang dapat berubah. Ketika state berubah, React me-render ulang komponen secara otomatis.

Mulailah dengan komponen kecil dan sederhana, lalu gabungkan menjadi aplikasi yang lebih besar.`,
		Category:    "React",
		Tags:        []string{"React", "JavaScript", "Frontend", "Component"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-02-01",
		ReadTime:    15,
		Difficulty:  models.DifficultyBeginner,
	},
	{
		ID:      "react-hooks",
		Title:   "Menguasai React Hooks",
		Excerpt: "Pelajari hooks paling penting dalam React seperti useState, useEffect, useContext, dan custom hooks.",
		Content: `Menguasai React Hooks

Hooks memungkinkan function component menggunakan state dan lifecycle tanpa class.

useState
const [count, setCount] = useState(0);

useEffect
useEffect(() => {
    document.title = 'Jumlah: ' + count;
}, [count]);

useContext
useContext membaca nilai dari Context terdekat tanpa prop drilling.

Custom Hooks
Custom hook adalah fungsi biasa yang memanggil hooks lain, berguna untuk membagikan logika antar komponen.

Aturan hooks:
• Panggil hooks hanya di level teratas komponen
• Panggil hooks hanya dari function component atau custom hook`,
		Category:    "React",
		Tags:        []string{"React", "Hooks", "useState", "useEffect"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-02-05",
		ReadTime:    18,
		Difficulty:  models.DifficultyIntermediate,
	},
	{
		ID:      "python-basics",
		Title:   "Dasar-Dasar Python untuk Pemula",
		Excerpt: "Mulai belajar Python dari nol dengan sintaks yang mudah dipahami dan contoh praktis.",
		Content: `Dasar-Dasar Python untuk Pemula

Mengapa Python?
Python terkenal dengan sintaks yang bersih dan mudah dibaca, cocok untuk pemula maupun profesional.

Variabel dan Tipe Data
nama = "Budi"
umur = 25
tinggi = 170.5
is_student = True

Struktur Data
• List: koleksi berurutan yang dapat diubah
• Tuple: koleksi berurutan yang tidak dapat diubah
• Dictionary: pasangan key-value
• Set: koleksi unik tanpa urutan

Fungsi
def sapa(nama):
    return f"Halo, {nama}!"

print(sapa("Ani"))

Python digunakan luas untuk web development, data science, automation, dan machine learning.`,
		Category:    "Python",
		Tags:        []string{"Python", "Pemula", "Programming", "Basics"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-02-10",
		ReadTime:    12,
		Difficulty:  models.DifficultyBeginner,
	},
	{
		ID:      "python-oop",
		Title:   "Object-Oriented Programming dalam Python",
		Excerpt: "Pelajari konsep OOP seperti class, object, inheritance, dan polymorphism dalam Python.",
		Content: `Object-Oriented Programming dalam Python

Class dan Object
class Mahasiswa:
    def __init__(self, nama, nim):
        self.nama = nama
        self.nim = nim

    def perkenalan(self):
        return f"Saya {self.nama}, NIM {self.nim}"

budi = Mahasiswa("Budi", "12345")

Inheritance
class MahasiswaS2(Mahasiswa):
    def __init__(self, nama, nim, tesis):
        super().__init__(nama, nim)
        self.tesis = tesis

Polymorphism
Method dengan nama sama dapat berperilaku berbeda pada class turunan yang berbeda.

Empat pilar OOP:
• Encapsulation
• Abstraction
• Inheritance
• Polymorphism`,
		Category:    "Python",
		Tags:        []string{"Python", "OOP", "Class", "Inheritance"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-02-15",
		ReadTime:    20,
		Difficulty:  models.DifficultyIntermediate,
	},
	{
		ID:      "html-semantic",
		Title:   "HTML Semantik untuk Web Modern",
		Excerpt: "Pelajari pentingnya HTML semantik dan bagaimana menggunakannya untuk website yang accessible dan SEO-friendly.",
		Content: `HTML Semantik untuk Web Modern

Apa itu HTML Semantik?
HTML semantik menggunakan elemen sesuai makna kontennya, bukan sekadar tampilannya.

Elemen Semantik Penting
• header: bagian kepala halaman atau section
• nav: navigasi utama
• main: konten utama halaman
• article: konten mandiri yang utuh
• section: pengelompokan tematik
• aside: konten pendukung
• footer: bagian kaki halaman

Manfaat
• Accessibility: screen reader memahami struktur halaman
• SEO: mesin pencari mengindeks konten lebih akurat
• Maintainability: kode lebih mudah dibaca developer lain

Gunakan div hanya ketika tidak ada elemen semantik yang sesuai.`,
		Category:    "Web Development",
		Tags:        []string{"HTML", "Semantic", "SEO", "Accessibility"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-02-20",
		ReadTime:    10,
		Difficulty:  models.DifficultyBeginner,
	},
	{
		ID:      "css-flexbox",
		Title:   "Menguasai CSS Flexbox Layout",
		Excerpt: "Belajar CSS Flexbox untuk membuat layout yang fleksibel dan responsif dengan mudah.",
		Content: `Menguasai CSS Flexbox Layout

Konsep Dasar
Flexbox adalah model layout satu dimensi untuk mengatur elemen dalam baris atau kolom.

.container {
    display: flex;
    justify-content: center;
    align-items: center;
    gap: 16px;
}

Properti Container
• flex-direction: arah utama (row/column)
• justify-content: perataan pada sumbu utama
• align-items: perataan pada sumbu silang
• flex-wrap: izinkan elemen pindah baris

Properti Item
• flex-grow: proporsi pertumbuhan
• flex-shrink: proporsi penyusutan
• flex-basis: ukuran awal

Flexbox sangat cocok untuk navbar, card list, dan centering konten.`,
		Category:    "Web Development",
		Tags:        []string{"CSS", "Flexbox", "Layout", "Responsive"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-02-25",
		ReadTime:    15,
		Difficulty:  models.DifficultyIntermediate,
	},
	{
		ID:      "sql-basics",
		Title:   "Dasar-Dasar SQL untuk Database",
		Excerpt: "Pelajari query SQL fundamental untuk manipulasi dan pengambilan data dari database relational.",
		Content: `Dasar-Dasar SQL untuk Database

Query Fundamental
SELECT nama, email FROM mahasiswa WHERE angkatan = 2024 ORDER BY nama;

INSERT INTO mahasiswa (nama, email) VALUES ('Budi', 'budi@mail.com');

UPDATE mahasiswa SET email = 'baru@mail.com' WHERE id = 1;

DELETE FROM mahasiswa WHERE id = 1;

JOIN
SELECT m.nama, k.judul
FROM mahasiswa m
JOIN kelas k ON k.id = m.kelas_id;

Agregasi
• COUNT: menghitung baris
• SUM / AVG: jumlah dan rata-rata
• GROUP BY: pengelompokan
• HAVING: filter hasil agregasi

Selalu gunakan WHERE pada UPDATE dan DELETE agar tidak mengubah seluruh tabel.`,
		Category:    "Database",
		Tags:        []string{"SQL", "Database", "Query", "Data"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-03-01",
		ReadTime:    18,
		Difficulty:  models.DifficultyBeginner,
	},
	{
		ID:      "nodejs-express",
		Title:   "Membangun API dengan Node.js dan Express",
		Excerpt: "Belajar membuat RESTful API menggunakan Node.js dan Express framework.",
		Content: `Membangun API dengan Node.js dan Express

Setup Express
const express = require('express');
const app = express();
app.use(express.json());

Routing
app.get('/api/articles', (req, res) => {
    res.json(articles);
});

app.post('/api/articles', (req, res) => {
    const article = req.body;
    articles.push(article);
    res.status(201).json(article);
});

Middleware
Middleware memproses request sebelum mencapai handler, misalnya untuk logging, autentikasi, dan validasi.

Prinsip RESTful:
• GET untuk membaca data
• POST untuk membuat data
• PUT/PATCH untuk memperbarui
• DELETE untuk menghapus

app.listen(3000, () => console.log('Server berjalan di port 3000'));`,
		Category:    "Backend",
		Tags:        []string{"Node.js", "Express", "API", "Backend"},
		Author:      "Idin Iskandar",
		PublishDate: "2024-03-05",
		ReadTime:    20,
		Difficulty:  models.DifficultyIntermediate,
	},
}
